package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithPosition places the camera at a world-space position, keeping its rotation.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform.Position = mgl32.Vec3{x, y, z}
	}
}

// WithTransform sets the camera's full world transform.
//
// Parameters:
//   - t: position and rotation
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's transform
func WithTransform(t Transform) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform = t
	}
}

// WithPerspective sets a perspective projection.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithPerspective(fov, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = PerspectiveProjection{Fov: fov, Aspect: 1.0, Near: near, Far: far}
	}
}

// WithOrthographic sets an orthographic projection.
//
// Parameters:
//   - scale: world units per logical pixel
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithOrthographic(scale float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		o := DefaultOrthographic()
		o.Scale = scale
		c.projection = o
	}
}

// WithProjection sets an arbitrary projection.
//
// Parameters:
//   - p: the projection
//
// Returns:
//   - CameraBuilderOption: functional option to set the projection
func WithProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = p
	}
}

// WithOrder sets the draw order. Higher values draw later and win pointer focus on overlap.
//
// Parameters:
//   - order: the draw order
//
// Returns:
//   - CameraBuilderOption: functional option to set the order
func WithOrder(order int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.order = order
	}
}

// WithTarget sets the render target.
//
// Parameters:
//   - target: the render target
//
// Returns:
//   - CameraBuilderOption: functional option to set the render target
func WithTarget(target RenderTarget) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = target
	}
}

// WithWindow targets a specific window.
//
// Parameters:
//   - id: the window id
//
// Returns:
//   - CameraBuilderOption: functional option to set the render target
func WithWindow(id common.WindowID) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = WindowTarget(id)
	}
}

// WithViewport restricts the camera to a sub-rectangle of its target.
//
// Parameters:
//   - x, y: top-left corner in logical pixels
//   - width, height: size in logical pixels
//
// Returns:
//   - CameraBuilderOption: functional option to set the viewport
func WithViewport(x, y, width, height float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewport = Viewport{
			Position: mgl32.Vec2{x, y},
			Size:     mgl32.Vec2{width, height},
		}
		c.hasViewport = true
	}
}

// WithTargetSize records the render target's logical size up front.
//
// Parameters:
//   - width, height: logical size
//
// Returns:
//   - CameraBuilderOption: functional option to set the target size
func WithTargetSize(width, height float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.targetSize = mgl32.Vec2{width, height}
	}
}
