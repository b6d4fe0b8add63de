// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WindowID identifies a host window. Cameras reference the window they render to by id,
// and input snapshots carry per-window state keyed by id.
type WindowID uint64

// Rect is an axis-aligned rectangle in logical window coordinates (origin top-left, Y down).
type Rect struct {
	// Min is the top-left corner.
	Min mgl32.Vec2
	// Max is the bottom-right corner.
	Max mgl32.Vec2
}

// NewRect creates a Rect from its top-left corner and its size.
//
// Parameters:
//   - pos: top-left corner
//   - size: width and height
//
// Returns:
//   - Rect: the rectangle spanning pos to pos+size
func NewRect(pos, size mgl32.Vec2) Rect {
	return Rect{Min: pos, Max: pos.Add(size)}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() mgl32.Vec2 {
	return r.Max.Sub(r.Min)
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.Max[0] - r.Min[0]
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.Max[1] - r.Min[1]
}

// ContainsStrict reports whether p lies strictly inside the rectangle. Points on the border are outside.
//
// Parameters:
//   - p: the point to test
//
// Returns:
//   - bool: true if min < p < max on both axes
func (r Rect) ContainsStrict(p mgl32.Vec2) bool {
	return p[0] > r.Min[0] && p[0] < r.Max[0] &&
		p[1] > r.Min[1] && p[1] < r.Max[1]
}
