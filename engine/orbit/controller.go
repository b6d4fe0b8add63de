package orbit

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MinZoom is the hard floor for radius and orthographic scale, whatever the configured lower limit.
const MinZoom float32 = 0.05

// Limits is an optional lower/upper bound pair. A nil bound is not enforced.
type Limits struct {
	Lower *float32
	Upper *float32
}

// Bounded returns Limits with both bounds set.
//
// Parameters:
//   - lower: the lower bound
//   - upper: the upper bound
//
// Returns:
//   - Limits: the limit pair
func Bounded(lower, upper float32) Limits {
	return Limits{Lower: common.Ptr(lower), Upper: common.Ptr(upper)}
}

// Apply clamps v to the configured bounds. The lower bound is applied first and the upper bound
// last, so an inverted pair collapses to the upper bound.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: the clamped value
func (l Limits) Apply(v float32) float32 {
	if l.Lower != nil && v < *l.Lower {
		v = *l.Lower
	}
	if l.Upper != nil && v > *l.Upper {
		v = *l.Upper
	}
	return v
}

// Controller is the orbit/pan/zoom state attached to one camera.
//
// Fields prefixed with Target are what the camera moves towards; the unprefixed ones are where it
// currently is and are maintained by the update engine. Alpha, Beta, Radius and Scale stay nil until
// the first update derives them from the camera's transform; set them before that to override the
// derived values. After initialization, drive the camera through the Target fields (and ForceUpdate).
//
// A Controller must only be mutated between ticks.
type Controller struct {
	// Focus is the point the camera orbits around and looks at.
	Focus mgl32.Vec3
	// Radius is the distance from Focus. Ignored for orthographic zoom, which uses Scale.
	Radius *float32
	// Scale is the orthographic projection scale. Only used with orthographic projections.
	Scale *float32
	// Alpha is the rotation around the world Y axis, in radians.
	Alpha *float32
	// Beta is the rotation around the local X axis, in radians.
	Beta *float32

	TargetFocus  mgl32.Vec3
	TargetAlpha  float32
	TargetBeta   float32
	TargetRadius float32
	TargetScale  float32

	AlphaLimits  Limits
	BetaLimits   Limits
	ZoomLimits   Limits
	FocusXLimits Limits
	FocusYLimits Limits
	FocusZLimits Limits

	OrbitSensitivity float32
	// OrbitSmoothness is in [0, 1): 0 disables smoothing, values near 1 smooth heavily.
	OrbitSmoothness float32
	PanSensitivity  float32
	PanSmoothness   float32
	ZoomSensitivity float32
	// ZoomSmoothness applies to line-based scrolling only. Pixel-based zoom is applied directly.
	ZoomSmoothness float32

	ButtonOrbit common.MouseButton
	ButtonPan   common.MouseButton
	// ModifierOrbit must be held for ButtonOrbit to orbit. KeyNone means no modifier.
	ModifierOrbit common.Key
	// ModifierPan must be held for ButtonPan to pan. KeyNone means no modifier.
	ModifierPan common.Key
	// ModifierOrbitTouchpad turns pixel scrolling into orbiting while held. KeyNone disables it.
	ModifierOrbitTouchpad common.Key

	ReversedZoom bool
	// IsUpsideDown is maintained by the update engine and only changes when an orbit drag starts or ends.
	IsUpsideDown    bool
	AllowUpsideDown bool
	Enabled         bool
	// Initialized is set after the first update. Set it yourself to animate from the preset
	// current values instead of snapping to the camera's transform.
	Initialized bool
	// ForceUpdate writes the transform on the next update even without input, then clears itself.
	ForceUpdate bool
}

// NewController creates a Controller with default sensitivities and bindings.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - *Controller: the newly created controller
func NewController(options ...ControllerOption) *Controller {
	c := &Controller{
		TargetRadius:     1.0,
		TargetScale:      1.0,
		OrbitSensitivity: 1.0,
		OrbitSmoothness:  0.8,
		PanSensitivity:   1.0,
		PanSmoothness:    0.6,
		ZoomSensitivity:  1.0,
		ZoomSmoothness:   0.8,
		ButtonOrbit:      common.MouseButtonLeft,
		ButtonPan:        common.MouseButtonRight,
		Enabled:          true,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Controller) applyZoomLimits(v float32) float32 {
	return max(c.ZoomLimits.Apply(v), MinZoom)
}

func (c *Controller) applyFocusLimits(f mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		c.FocusXLimits.Apply(f[0]),
		c.FocusYLimits.Apply(f[1]),
		c.FocusZLimits.Apply(f[2]),
	}
}

// clampTargets applies every configured limit to the target values.
func (c *Controller) clampTargets() {
	c.TargetAlpha = c.AlphaLimits.Apply(c.TargetAlpha)
	c.TargetBeta = c.BetaLimits.Apply(c.TargetBeta)
	c.TargetRadius = c.applyZoomLimits(c.TargetRadius)
	c.TargetScale = c.applyZoomLimits(c.TargetScale)
	c.TargetFocus = c.applyFocusLimits(c.TargetFocus)

	if !c.AllowUpsideDown {
		c.TargetBeta = common.Clamp(c.TargetBeta, -math.Pi/2, math.Pi/2)
	}
}

// refreshUpsideDown recomputes IsUpsideDown from TargetBeta.
func (c *Controller) refreshUpsideDown() {
	wrapped := float32(math.Abs(math.Mod(float64(c.TargetBeta), common.Tau)))
	c.IsUpsideDown = wrapped > common.Tau/4 && wrapped < 3*common.Tau/4
}
