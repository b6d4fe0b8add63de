package input

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ScrollUnit tells how a scroll event's magnitude is measured.
type ScrollUnit int

const (
	// ScrollLine is a notched wheel: magnitudes count lines.
	ScrollLine ScrollUnit = iota
	// ScrollPixel is a smooth source such as a touchpad: magnitudes count pixels.
	ScrollPixel
)

// ScrollEvent is one scroll step.
type ScrollEvent struct {
	Unit ScrollUnit
	X, Y float32
}

// WindowState is what the host knows about one window this frame.
type WindowState struct {
	// Size is the logical size of the window.
	Size mgl32.Vec2
	// Cursor is the pointer position in logical window coordinates (origin top-left).
	Cursor mgl32.Vec2
	// CursorInside is false when the pointer is not over this window.
	CursorInside bool
}

// CursorPosition returns the pointer position, or false when the pointer is outside the window.
func (w WindowState) CursorPosition() (mgl32.Vec2, bool) {
	return w.Cursor, w.CursorInside
}

// Snapshot is all input for one frame. It is read-only for consumers.
type Snapshot struct {
	// DeltaTime is the frame duration in seconds.
	DeltaTime float32

	Mouse ButtonInput[common.MouseButton]
	Keys  ButtonInput[common.Key]

	// MouseMotion holds raw pointer-motion deltas since the previous frame.
	MouseMotion []mgl32.Vec2
	// Scroll holds scroll events since the previous frame.
	Scroll []ScrollEvent
	// Magnify holds trackpad pinch amounts since the previous frame.
	Magnify []float32
	// Rotate holds trackpad rotate angle deltas (radians) since the previous frame.
	Rotate []float32

	// Windows holds per-window state keyed by id.
	Windows map[common.WindowID]WindowState
	// PrimaryWindow is the id that cameras targeting "the primary window" resolve to.
	PrimaryWindow common.WindowID

	// PointerOverUI is set when a UI overlay has claimed the pointer; camera input is suppressed.
	PointerOverUI bool
}

// NewSnapshot returns an empty snapshot with an initialized window map.
func NewSnapshot() *Snapshot {
	return &Snapshot{Windows: make(map[common.WindowID]WindowState)}
}

// MotionSum returns the sum of all pointer-motion deltas.
func (s *Snapshot) MotionSum() mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range s.MouseMotion {
		sum = sum.Add(d)
	}
	return sum
}

// Window looks up a window by id.
//
// Parameters:
//   - id: the window id
//
// Returns:
//   - WindowState: the window state
//   - bool: false if the window is unknown
func (s *Snapshot) Window(id common.WindowID) (WindowState, bool) {
	w, ok := s.Windows[id]
	return w, ok
}

// HasScroll reports whether any scroll event arrived this frame.
func (s *Snapshot) HasScroll() bool {
	return len(s.Scroll) > 0
}
