package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection is implemented by PerspectiveProjection and OrthographicProjection.
// Callers type-switch on the concrete value to read projection-specific parameters.
type Projection interface {
	// Matrix returns the projection matrix for the current parameters.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	Matrix() mgl32.Mat4

	// withViewportSize returns a copy of the projection adapted to a new logical viewport size.
	withViewportSize(size mgl32.Vec2) Projection
}

// PerspectiveProjection is a standard perspective frustum.
type PerspectiveProjection struct {
	// Fov is the vertical field of view in radians.
	Fov float32
	// Aspect is the viewport aspect ratio (width / height).
	Aspect float32
	// Near is the near clipping plane distance.
	Near float32
	// Far is the far clipping plane distance.
	Far float32
}

// DefaultPerspective returns a 45 degree perspective projection with a square aspect ratio.
func DefaultPerspective() PerspectiveProjection {
	return PerspectiveProjection{
		Fov:    45.0 * (math.Pi / 180.0),
		Aspect: 1.0,
		Near:   0.1,
		Far:    1000.0,
	}
}

func (p PerspectiveProjection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(p.Fov, p.Aspect, p.Near, p.Far)
}

func (p PerspectiveProjection) withViewportSize(size mgl32.Vec2) Projection {
	if size[1] > 0 {
		p.Aspect = size[0] / size[1]
	}
	return p
}

// OrthographicProjection is an orthographic projection whose visible area scales with the viewport:
// one logical pixel maps to Scale world units.
type OrthographicProjection struct {
	// Scale multiplies the visible area. Larger values zoom out.
	Scale float32
	// Near is the near clipping plane distance.
	Near float32
	// Far is the far clipping plane distance.
	Far float32
	// ViewportSize is the logical size of the viewport the projection renders into.
	// Kept in sync by the owning camera.
	ViewportSize mgl32.Vec2
}

// DefaultOrthographic returns an orthographic projection with unit scale.
func DefaultOrthographic() OrthographicProjection {
	return OrthographicProjection{
		Scale: 1.0,
		Near:  -1000.0,
		Far:   1000.0,
	}
}

// Area returns the visible region in view space, centered on the origin.
//
// Returns:
//   - common.Rect: the projection area (ViewportSize * Scale)
func (o OrthographicProjection) Area() common.Rect {
	half := o.ViewportSize.Mul(o.Scale * 0.5)
	return common.Rect{
		Min: mgl32.Vec2{-half[0], -half[1]},
		Max: half,
	}
}

func (o OrthographicProjection) Matrix() mgl32.Mat4 {
	a := o.Area()
	if a.Width() == 0 || a.Height() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.Ortho(a.Min[0], a.Max[0], a.Min[1], a.Max[1], o.Near, o.Far)
}

func (o OrthographicProjection) withViewportSize(size mgl32.Vec2) Projection {
	o.ViewportSize = size
	return o
}
