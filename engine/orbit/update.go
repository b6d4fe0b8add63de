package orbit

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// zoomStep is the fraction of the target zoom changed per unit of scroll.
	zoomStep float32 = 0.2
	// magnifyFactor and rotateFactor scale trackpad gestures relative to the sensitivities.
	magnifyFactor float32 = 2
	rotateFactor  float32 = 3
)

// frameInput is the input a single controller accepted this frame.
type frameInput struct {
	pan                mgl32.Vec2
	rotation           mgl32.Vec2
	scrollLine         float32
	scrollPixel        float32
	orbitButtonChanged bool
}

// UpdateController runs one frame of the orbit update engine for a single rig: first-frame
// initialization, input gathering, target updates, clamping and interpolation. The camera's transform
// (and orthographic scale) is written only when something moved, a target differs from its current
// value, or ForceUpdate is set.
//
// Input is only accepted when the pointer is not over UI, the controller is enabled, and the rig is
// the active camera. Gated-off rigs keep interpolating towards their existing targets.
//
// Parameters:
//   - rig: the camera and its controller
//   - active: this frame's active-camera record
//   - in: this frame's input
//   - mouseDelta: sum of this frame's pointer-motion deltas
//
// Returns:
//   - bool: true if the camera transform was written
func UpdateController(rig Rig, active ActiveCameraData, in *input.Snapshot, mouseDelta mgl32.Vec2) bool {
	c := rig.Controller
	cam := rig.Camera

	written := false
	if !c.Initialized {
		c.initialize(cam)
		written = true
	}

	var fi frameInput
	if !in.PointerOverUI && c.Enabled && active.Entity == cam.ID() {
		fi = c.gatherInput(in, mouseDelta)
	}

	if fi.orbitButtonChanged {
		// Only re-evaluated when an orbit drag starts or ends, so the horizontal
		// direction does not flip mid-drag.
		c.refreshUpsideDown()
	}

	proj := cam.Projection()
	hasMoved := false
	if fi.rotation.LenSqr() > 0 {
		hasMoved = c.applyRotation(fi.rotation, active)
	} else if fi.pan.LenSqr() > 0 {
		hasMoved = c.applyPan(fi.pan, active, proj, cam.Transform())
	}
	if fi.scrollLine+fi.scrollPixel != 0 {
		c.applyZoom(fi.scrollLine, fi.scrollPixel, proj)
		hasMoved = true
	}

	c.clampTargets()

	if c.commit(cam, proj, hasMoved, in.DeltaTime) {
		written = true
	}
	return written
}

// initialize derives the current spherical state from the camera transform, applies limits, seeds the
// targets and writes the transform.
func (c *Controller) initialize(cam camera.Camera) {
	alpha, beta, radius := CartesianToSpherical(cam.Transform().Position, c.Focus)
	alpha = c.AlphaLimits.Apply(common.Deref(c.Alpha, alpha))
	beta = c.BetaLimits.Apply(common.Deref(c.Beta, beta))
	radius = c.applyZoomLimits(common.Deref(c.Radius, radius))

	c.Alpha = common.Ptr(alpha)
	c.Beta = common.Ptr(beta)
	c.Radius = common.Ptr(radius)
	c.TargetAlpha = alpha
	c.TargetBeta = beta
	c.TargetRadius = radius
	c.TargetFocus = c.Focus

	if p, ok := cam.Projection().(camera.OrthographicProjection); ok {
		// An explicit Scale overrides the projection; otherwise adopt the projection's.
		scale := c.applyZoomLimits(common.Deref(c.Scale, p.Scale))
		p.Scale = scale
		c.Scale = common.Ptr(scale)
		c.TargetScale = scale
		cam.SetProjection(p)
	}

	cam.SetTransform(SphericalToTransform(alpha, beta, radius, c.Focus))
	c.Initialized = true
}

func (c *Controller) gatherInput(in *input.Snapshot, mouseDelta mgl32.Vec2) frameInput {
	var fi frameInput

	if c.orbitPressed(in) {
		fi.rotation = fi.rotation.Add(mouseDelta.Mul(c.OrbitSensitivity))
	} else if c.panPressed(in) {
		fi.pan = fi.pan.Add(mouseDelta.Mul(c.PanSensitivity))
	}

	for _, ev := range in.Scroll {
		switch ev.Unit {
		case input.ScrollLine:
			direction := float32(1)
			if c.ReversedZoom {
				direction = -1
			}
			fi.scrollLine += ev.Y * direction * c.ZoomSensitivity
		case input.ScrollPixel:
			delta := mgl32.Vec2{ev.X, ev.Y}
			if c.touchpadOrbitHeld(in) {
				fi.rotation = fi.rotation.Add(delta.Mul(c.OrbitSensitivity))
			} else {
				fi.pan = fi.pan.Add(delta.Mul(c.PanSensitivity))
			}
		}
	}

	for _, amount := range in.Magnify {
		fi.scrollPixel += amount * c.ZoomSensitivity * magnifyFactor
	}
	for _, angle := range in.Rotate {
		fi.rotation[0] += angle * c.OrbitSensitivity * rotateFactor
	}

	fi.orbitButtonChanged = c.orbitJustPressed(in) || c.orbitJustReleased(in)
	return fi
}

// applyRotation turns a pixel delta into angle changes, scaled by the window size so small viewports
// don't orbit too fast.
func (c *Controller) applyRotation(rotation mgl32.Vec2, active ActiveCameraData) bool {
	win := active.WindowSize
	if win[0] == 0 || win[1] == 0 {
		return false
	}
	deltaX := rotation[0] / win[0] * math.Pi * 2
	if c.IsUpsideDown {
		deltaX = -deltaX
	}
	deltaY := rotation[1] / win[1] * math.Pi
	c.TargetAlpha -= deltaX
	c.TargetBeta += deltaY
	return true
}

// applyPan turns a pixel delta into a focus translation along the camera's right/up axes. Each axis
// direction is clamped against the focus limits before it is scaled, so panning slides along a
// boundary instead of crossing it.
func (c *Controller) applyPan(pan mgl32.Vec2, active ActiveCameraData, proj camera.Projection, t camera.Transform) bool {
	vp := active.ViewportSize
	if vp[0] == 0 || vp[1] == 0 {
		return false
	}

	multiplier := float32(1)
	switch p := proj.(type) {
	case camera.PerspectiveProjection:
		pan = common.DivElem2(common.MulElem2(pan, mgl32.Vec2{p.Fov * p.Aspect, p.Fov}), vp)
		// Pan speed is proportional to the distance from the focus.
		if c.Radius != nil {
			multiplier = *c.Radius
		}
	case camera.OrthographicProjection:
		pan = common.DivElem2(common.MulElem2(pan, p.Area().Size()), vp)
	}

	// Dragging right moves the focus left, so the world follows the pointer. Each axis is probed
	// one unit in its direction of travel; an axis pinned by a limit drops out.
	signX := common.Signum(-pan[0])
	signY := common.Signum(pan[1])
	right := common.NormalizeOrZero(c.applyFocusLimits(c.TargetFocus.Add(t.Right().Mul(signX))).Sub(c.TargetFocus))
	up := common.NormalizeOrZero(c.applyFocusLimits(c.TargetFocus.Add(t.Up().Mul(signY))).Sub(c.TargetFocus))

	right = right.Mul(common.Abs(pan[0]))
	up = up.Mul(common.Abs(pan[1]))
	c.TargetFocus = c.TargetFocus.Add(right.Add(up).Mul(multiplier))
	return true
}

// applyZoom changes the target zoom multiplicatively. Pixel-based zoom is already smooth at the
// source, so it is also applied to the current value directly.
func (c *Controller) applyZoom(scrollLine, scrollPixel float32, proj camera.Projection) {
	_, ortho := proj.(camera.OrthographicProjection)

	target := &c.TargetRadius
	current := c.Radius
	if ortho {
		target = &c.TargetScale
		current = c.Scale
	}

	lineDelta := -scrollLine * *target * zoomStep
	pixelDelta := -scrollPixel * *target * zoomStep
	*target += lineDelta + pixelDelta

	if current == nil {
		return
	}
	next := common.Ptr(c.applyZoomLimits(*current + pixelDelta))
	if ortho {
		c.Scale = next
	} else {
		c.Radius = next
	}
}

// commit interpolates current values towards the targets and writes the camera transform.
func (c *Controller) commit(cam camera.Camera, proj camera.Projection, hasMoved bool, dt float32) bool {
	if c.Alpha == nil || c.Beta == nil || c.Radius == nil {
		return false
	}
	alpha, beta, radius := *c.Alpha, *c.Beta, *c.Radius
	ortho, isOrtho := proj.(camera.OrthographicProjection)

	changed := hasMoved ||
		c.TargetAlpha != alpha ||
		c.TargetBeta != beta ||
		c.TargetRadius != radius ||
		c.TargetFocus != c.Focus ||
		(isOrtho && (c.Scale == nil || c.TargetScale != *c.Scale)) ||
		c.ForceUpdate
	if !changed {
		return false
	}

	newAlpha := LerpAndSnap(alpha, c.TargetAlpha, c.OrbitSmoothness, dt)
	newBeta := LerpAndSnap(beta, c.TargetBeta, c.OrbitSmoothness, dt)
	newRadius := LerpAndSnap(radius, c.TargetRadius, c.ZoomSmoothness, dt)
	newFocus := LerpAndSnapVec3(c.Focus, c.TargetFocus, c.PanSmoothness, dt)

	if isOrtho {
		newScale := LerpAndSnap(common.Deref(c.Scale, c.TargetScale), c.TargetScale, c.ZoomSmoothness, dt)
		ortho.Scale = newScale
		cam.SetProjection(ortho)
		c.Scale = common.Ptr(newScale)
	}

	cam.SetTransform(SphericalToTransform(newAlpha, newBeta, newRadius, newFocus))

	c.Alpha = common.Ptr(newAlpha)
	c.Beta = common.Ptr(newBeta)
	c.Radius = common.Ptr(newRadius)
	c.Focus = newFocus
	c.ForceUpdate = false
	return true
}
