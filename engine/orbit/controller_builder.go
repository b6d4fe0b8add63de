package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*Controller)

// WithFocus sets the initial focus point (and target focus).
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - ControllerOption: functional option to set the focus
func WithFocus(x, y, z float32) ControllerOption {
	return func(c *Controller) {
		c.Focus = mgl32.Vec3{x, y, z}
		c.TargetFocus = c.Focus
	}
}

// WithRadius overrides the radius derived from the camera transform at initialization.
//
// Parameters:
//   - radius: distance from the focus
//
// Returns:
//   - ControllerOption: functional option to set the radius
func WithRadius(radius float32) ControllerOption {
	return func(c *Controller) {
		c.Radius = common.Ptr(radius)
	}
}

// WithScale overrides the orthographic scale taken from the projection at initialization.
//
// Parameters:
//   - scale: orthographic projection scale
//
// Returns:
//   - ControllerOption: functional option to set the scale
func WithScale(scale float32) ControllerOption {
	return func(c *Controller) {
		c.Scale = common.Ptr(scale)
	}
}

// WithAngles overrides the alpha/beta angles derived at initialization.
//
// Parameters:
//   - alpha: rotation around world Y in radians
//   - beta: rotation around local X in radians
//
// Returns:
//   - ControllerOption: functional option to set the angles
func WithAngles(alpha, beta float32) ControllerOption {
	return func(c *Controller) {
		c.Alpha = common.Ptr(alpha)
		c.Beta = common.Ptr(beta)
	}
}

// WithAlphaLimits bounds the rotation around the world Y axis.
func WithAlphaLimits(l Limits) ControllerOption {
	return func(c *Controller) {
		c.AlphaLimits = l
	}
}

// WithBetaLimits bounds the rotation around the local X axis.
func WithBetaLimits(l Limits) ControllerOption {
	return func(c *Controller) {
		c.BetaLimits = l
	}
}

// WithZoomLimits bounds the radius (perspective) or scale (orthographic).
// Values below MinZoom are never reached regardless of the lower bound.
func WithZoomLimits(l Limits) ControllerOption {
	return func(c *Controller) {
		c.ZoomLimits = l
	}
}

// WithFocusLimits bounds the focus point per axis.
//
// Parameters:
//   - x, y, z: limit pairs for each axis
//
// Returns:
//   - ControllerOption: functional option to set the focus limits
func WithFocusLimits(x, y, z Limits) ControllerOption {
	return func(c *Controller) {
		c.FocusXLimits = x
		c.FocusYLimits = y
		c.FocusZLimits = z
	}
}

// WithOrbit sets orbit sensitivity and smoothness.
//
// Parameters:
//   - sensitivity: multiplier for orbit input
//   - smoothness: damping in [0, 1)
//
// Returns:
//   - ControllerOption: functional option to configure orbiting
func WithOrbit(sensitivity, smoothness float32) ControllerOption {
	return func(c *Controller) {
		c.OrbitSensitivity = sensitivity
		c.OrbitSmoothness = smoothness
	}
}

// WithPan sets pan sensitivity and smoothness.
//
// Parameters:
//   - sensitivity: multiplier for pan input
//   - smoothness: damping in [0, 1)
//
// Returns:
//   - ControllerOption: functional option to configure panning
func WithPan(sensitivity, smoothness float32) ControllerOption {
	return func(c *Controller) {
		c.PanSensitivity = sensitivity
		c.PanSmoothness = smoothness
	}
}

// WithZoom sets zoom sensitivity and smoothness.
//
// Parameters:
//   - sensitivity: multiplier for scroll input
//   - smoothness: damping in [0, 1), line-based scrolling only
//
// Returns:
//   - ControllerOption: functional option to configure zooming
func WithZoom(sensitivity, smoothness float32) ControllerOption {
	return func(c *Controller) {
		c.ZoomSensitivity = sensitivity
		c.ZoomSmoothness = smoothness
	}
}

// WithOrbitBinding sets the orbit button and an optional modifier (common.KeyNone for none).
func WithOrbitBinding(button common.MouseButton, modifier common.Key) ControllerOption {
	return func(c *Controller) {
		c.ButtonOrbit = button
		c.ModifierOrbit = modifier
	}
}

// WithPanBinding sets the pan button and an optional modifier (common.KeyNone for none).
func WithPanBinding(button common.MouseButton, modifier common.Key) ControllerOption {
	return func(c *Controller) {
		c.ButtonPan = button
		c.ModifierPan = modifier
	}
}

// WithTouchpadOrbitModifier sets the key that turns pixel scrolling into orbiting.
func WithTouchpadOrbitModifier(modifier common.Key) ControllerOption {
	return func(c *Controller) {
		c.ModifierOrbitTouchpad = modifier
	}
}

// WithReversedZoom flips the scroll direction for zooming.
func WithReversedZoom(reversed bool) ControllerOption {
	return func(c *Controller) {
		c.ReversedZoom = reversed
	}
}

// WithAllowUpsideDown lets beta leave [-pi/2, pi/2].
func WithAllowUpsideDown(allow bool) ControllerOption {
	return func(c *Controller) {
		c.AllowUpsideDown = allow
	}
}

// WithEnabled enables or disables input handling.
func WithEnabled(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.Enabled = enabled
	}
}
