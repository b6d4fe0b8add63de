package orbit

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

var center = mgl32.Vec2{400, 300}

func TestUpdateInitializesFromTransform(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 1.5, 5)})
	initRig(t, rig)
	c := rig.Controller

	wantRadius := mgl32.Vec3{0, 1.5, 5}.Len()
	if !approx(*c.Radius, wantRadius, 1e-5) || !approx(c.TargetRadius, wantRadius, 1e-5) {
		t.Errorf("radius = %v / target %v, want %v", *c.Radius, c.TargetRadius, wantRadius)
	}
	if *c.Alpha != 0 || c.TargetAlpha != 0 {
		t.Errorf("alpha = %v, want 0", *c.Alpha)
	}
	if *c.Beta <= 0 || c.TargetBeta != *c.Beta {
		t.Errorf("beta = %v / target %v, want a positive matching pair", *c.Beta, c.TargetBeta)
	}
	if c.Scale != nil {
		t.Errorf("perspective camera got a scale: %v", *c.Scale)
	}

	tr := rig.Camera.Transform()
	if !approxVec3(tr.Position, mgl32.Vec3{0, 1.5, 5}, 1e-4) {
		t.Errorf("position moved to %v", tr.Position)
	}
	if !approxVec3(tr.Forward(), tr.Position.Mul(-1).Normalize(), 1e-4) {
		t.Errorf("camera does not face the focus: forward %v", tr.Forward())
	}
}

func TestUpdateInitializationHonorsPresetsAndLimits(t *testing.T) {
	rig := newTestRig(
		[]camera.CameraBuilderOption{camera.WithPosition(5, 0, 0)},
		WithFocus(1, 0, 0),
		WithAngles(0.5, 0.2),
		WithRadius(3),
		WithAlphaLimits(Bounded(-0.1, 0.1)),
	)
	initRig(t, rig)
	c := rig.Controller

	if *c.Alpha != 0.1 || *c.Beta != 0.2 || *c.Radius != 3 {
		t.Errorf("initialized to (%v, %v, %v), want (0.1, 0.2, 3)", *c.Alpha, *c.Beta, *c.Radius)
	}
	if c.TargetFocus != c.Focus {
		t.Errorf("target focus %v != focus %v", c.TargetFocus, c.Focus)
	}
	want := SphericalToTransform(0.1, 0.2, 3, mgl32.Vec3{1, 0, 0}).Position
	if got := rig.Camera.Transform().Position; !approxVec3(got, want, 1e-5) {
		t.Errorf("position = %v, want %v", got, want)
	}
}

func TestUpdateIdleWritesNothing(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)})
	initRig(t, rig)

	if UpdateController(rig, activeFor(rig), newSnapshot(center), mgl32.Vec2{}) {
		t.Errorf("idle update wrote the transform")
	}

	rig.Controller.ForceUpdate = true
	if !UpdateController(rig, activeFor(rig), newSnapshot(center), mgl32.Vec2{}) {
		t.Errorf("ForceUpdate did not write the transform")
	}
	if rig.Controller.ForceUpdate {
		t.Errorf("ForceUpdate was not cleared")
	}
}

func TestUpdateScrollLineZoomsOut(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 1.5, 5)})
	initRig(t, rig)
	c := rig.Controller
	before := c.TargetRadius

	in := newSnapshot(center)
	in.Scroll = []input.ScrollEvent{{Unit: input.ScrollLine, Y: -1}}
	if !UpdateController(rig, activeFor(rig), in, mgl32.Vec2{}) {
		t.Fatalf("scroll did not write the transform")
	}

	if want := before * 1.2; !approx(c.TargetRadius, want, 1e-4) {
		t.Errorf("target radius = %v, want %v", c.TargetRadius, want)
	}
	// Line scrolling is smoothed: the current radius only moves part of the way.
	if *c.Radius <= before || *c.Radius >= c.TargetRadius {
		t.Errorf("radius = %v, want between %v and %v", *c.Radius, before, c.TargetRadius)
	}
}

func TestUpdateReversedZoom(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)}, WithReversedZoom(true))
	initRig(t, rig)

	in := newSnapshot(center)
	in.Scroll = []input.ScrollEvent{{Unit: input.ScrollLine, Y: -1}}
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{})

	if !approx(rig.Controller.TargetRadius, 4, 1e-4) {
		t.Errorf("target radius = %v, want 4", rig.Controller.TargetRadius)
	}
}

func TestUpdateOrthographicMagnify(t *testing.T) {
	cases := []struct {
		name    string
		magnify float32
		want    float32
	}{
		{"small pinch", 0.1, 0.96},
		{"large pinch hits the floor", 10, MinZoom},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig([]camera.CameraBuilderOption{
				camera.WithOrthographic(1),
				camera.WithPosition(0, 0, 5),
			})
			initRig(t, rig)
			c := rig.Controller
			if c.Scale == nil || *c.Scale != 1 || c.TargetScale != 1 {
				t.Fatalf("scale not initialized from the projection")
			}

			in := newSnapshot(center)
			in.Magnify = []float32{tc.magnify}
			UpdateController(rig, activeFor(rig), in, mgl32.Vec2{})

			if !approx(*c.Scale, tc.want, 1e-5) || !approx(c.TargetScale, tc.want, 1e-5) {
				t.Errorf("scale = %v, target = %v, want %v", *c.Scale, c.TargetScale, tc.want)
			}
			p, ok := rig.Camera.Projection().(camera.OrthographicProjection)
			if !ok || !approx(p.Scale, tc.want, 1e-5) {
				t.Errorf("projection scale = %v, want %v", p.Scale, tc.want)
			}
		})
	}
}

func TestUpdateZoomFloor(t *testing.T) {
	rig := newTestRig(
		[]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)},
		WithZoomLimits(Bounded(0, 10)),
	)
	initRig(t, rig)
	c := rig.Controller

	c.TargetRadius = 0.001
	UpdateController(rig, activeFor(rig), newSnapshot(center), mgl32.Vec2{})
	if c.TargetRadius != MinZoom {
		t.Errorf("target radius = %v, want %v", c.TargetRadius, MinZoom)
	}

	c.TargetRadius = 50
	UpdateController(rig, activeFor(rig), newSnapshot(center), mgl32.Vec2{})
	if c.TargetRadius != 10 {
		t.Errorf("target radius = %v, want upper limit 10", c.TargetRadius)
	}
}

func TestUpdateOrbitDrag(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)})
	initRig(t, rig)
	c := rig.Controller

	in := newSnapshot(center)
	in.Mouse.Press(common.MouseButtonLeft)
	in.MouseMotion = []mgl32.Vec2{{50, 0}, {30, 60}}
	UpdateController(rig, activeFor(rig), in, in.MotionSum())

	wantAlpha := float32(-80.0 / 800.0 * 2 * math.Pi)
	wantBeta := float32(60.0 / 600.0 * math.Pi)
	if !approx(c.TargetAlpha, wantAlpha, 1e-5) || !approx(c.TargetBeta, wantBeta, 1e-5) {
		t.Errorf("targets = (%v, %v), want (%v, %v)", c.TargetAlpha, c.TargetBeta, wantAlpha, wantBeta)
	}
	if c.TargetFocus != (mgl32.Vec3{}) {
		t.Errorf("orbiting moved the focus to %v", c.TargetFocus)
	}
}

func TestUpdateUpsideDownFlipsHorizontalOrbit(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)}, WithAllowUpsideDown(true))
	initRig(t, rig)
	c := rig.Controller
	c.IsUpsideDown = true

	in := newSnapshot(center)
	in.Mouse.Press(common.MouseButtonLeft)
	in.Mouse.ClearFrame()
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{80, 0})

	if want := float32(80.0 / 800.0 * 2 * math.Pi); !approx(c.TargetAlpha, want, 1e-5) {
		t.Errorf("target alpha = %v, want %v", c.TargetAlpha, want)
	}
}

func TestUpdateUpsideDownChangesOnRelease(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)}, WithAllowUpsideDown(true))
	initRig(t, rig)
	c := rig.Controller
	active := activeFor(rig)

	press := newSnapshot(center)
	press.Mouse.Press(common.MouseButtonLeft)
	UpdateController(rig, active, press, mgl32.Vec2{})

	drag := newSnapshot(center)
	drag.Mouse.Press(common.MouseButtonLeft)
	drag.Mouse.ClearFrame()
	UpdateController(rig, active, drag, mgl32.Vec2{0, 400})

	if c.TargetBeta <= math.Pi/2 {
		t.Fatalf("target beta = %v, want past the pole", c.TargetBeta)
	}
	if c.IsUpsideDown {
		t.Errorf("upside-down flag changed mid-drag")
	}

	release := newSnapshot(center)
	release.Mouse.Press(common.MouseButtonLeft)
	release.Mouse.ClearFrame()
	release.Mouse.Release(common.MouseButtonLeft)
	UpdateController(rig, active, release, mgl32.Vec2{})

	if !c.IsUpsideDown {
		t.Errorf("upside-down flag not set on release (target beta %v)", c.TargetBeta)
	}
}

func TestUpdateBetaClampedWithoutUpsideDown(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)})
	initRig(t, rig)

	in := newSnapshot(center)
	in.Mouse.Press(common.MouseButtonLeft)
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{0, 400})

	if want := float32(math.Pi / 2); rig.Controller.TargetBeta != want {
		t.Errorf("target beta = %v, want %v", rig.Controller.TargetBeta, want)
	}
}

func TestUpdatePanRespectsFocusLimits(t *testing.T) {
	rig := newTestRig(
		[]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)},
		WithFocusLimits(Bounded(-1, 1), Limits{}, Limits{}),
	)
	initRig(t, rig)
	c := rig.Controller
	active := activeFor(rig)

	in := newSnapshot(center)
	in.Mouse.Press(common.MouseButtonRight)
	UpdateController(rig, active, in, mgl32.Vec2{-100000, 0})

	if c.TargetFocus != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("target focus = %v, want (1, 0, 0)", c.TargetFocus)
	}

	// Pinned on the upper bound, panning the other way still works.
	UpdateController(rig, active, in, mgl32.Vec2{10, 0})
	if c.TargetFocus[0] >= 1 {
		t.Errorf("could not pan away from the bound: target focus %v", c.TargetFocus)
	}

	for i := 0; i < 50; i++ {
		dx := float32(100000)
		if i%2 == 0 {
			dx = -dx
		}
		UpdateController(rig, active, in, mgl32.Vec2{dx, dx})
		if common.Abs(c.TargetFocus[0]) > 1 || common.Abs(c.Focus[0]) > 1 {
			t.Fatalf("frame %d: focus x escaped its limits: target %v, current %v", i, c.TargetFocus, c.Focus)
		}
	}
}

func TestUpdatePanSlidesAlongFocusLimit(t *testing.T) {
	// Yawed 45 degrees, the camera's right axis points along +X and -Z. With the focus pinned at
	// the X limit, panning right keeps only the Z part of the motion, at full speed.
	rig := newTestRig(
		nil,
		WithFocus(1, 0, 0),
		WithAngles(math.Pi/4, 0),
		WithRadius(5),
		WithFocusLimits(Bounded(-1, 1), Limits{}, Limits{}),
	)
	initRig(t, rig)
	c := rig.Controller

	right := rig.Camera.Transform().Right()
	if right[0] <= 0.5 || right[2] >= -0.5 {
		t.Fatalf("right axis = %v, want a mix of +X and -Z", right)
	}

	in := newSnapshot(center)
	in.Mouse.Press(common.MouseButtonRight)
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{-40, 0})

	p := rig.Camera.Projection().(camera.PerspectiveProjection)
	want := 40 * p.Fov * p.Aspect / testWindowSize[0] * 5
	if !approx(c.TargetFocus[0], 1, 1e-6) {
		t.Errorf("focus x = %v, want it held at the limit", c.TargetFocus[0])
	}
	if !approx(c.TargetFocus[2], -want, 1e-4) {
		t.Errorf("focus z = %v, want %v", c.TargetFocus[2], -want)
	}
	if !approx(c.TargetFocus[1], 0, 1e-5) {
		t.Errorf("focus y = %v, want 0", c.TargetFocus[1])
	}
}

func TestUpdatePanScalesWithRadius(t *testing.T) {
	near := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 2)})
	far := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 8)})
	initRig(t, near)
	initRig(t, far)

	for _, rig := range []Rig{near, far} {
		in := newSnapshot(center)
		in.Mouse.Press(common.MouseButtonRight)
		UpdateController(rig, activeFor(rig), in, mgl32.Vec2{-40, 0})
	}

	ratio := far.Controller.TargetFocus[0] / near.Controller.TargetFocus[0]
	if !approx(ratio, 4, 1e-3) {
		t.Errorf("pan ratio far/near = %v, want 4", ratio)
	}
}

func TestUpdatePixelScrollPansOrOrbits(t *testing.T) {
	rig := newTestRig(
		[]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)},
		WithTouchpadOrbitModifier(common.KeyLeftAlt),
	)
	initRig(t, rig)
	c := rig.Controller

	in := newSnapshot(center)
	in.Scroll = []input.ScrollEvent{{Unit: input.ScrollPixel, X: 20}}
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{})
	if c.TargetFocus[0] == 0 || c.TargetAlpha != 0 {
		t.Errorf("pixel scroll should pan: focus %v, alpha %v", c.TargetFocus, c.TargetAlpha)
	}

	focus := c.TargetFocus
	in = newSnapshot(center)
	in.Keys.Press(common.KeyLeftAlt)
	in.Scroll = []input.ScrollEvent{{Unit: input.ScrollPixel, X: 20}}
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{})
	if c.TargetFocus != focus || c.TargetAlpha == 0 {
		t.Errorf("pixel scroll with the modifier should orbit: focus %v, alpha %v", c.TargetFocus, c.TargetAlpha)
	}
}

func TestUpdateRotateGesture(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)})
	initRig(t, rig)

	in := newSnapshot(center)
	in.Rotate = []float32{0.1}
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{})

	want := float32(-0.3 / 800.0 * 2 * math.Pi)
	if !approx(rig.Controller.TargetAlpha, want, 1e-6) {
		t.Errorf("target alpha = %v, want %v", rig.Controller.TargetAlpha, want)
	}
}

func TestUpdateModifierGatesBinding(t *testing.T) {
	rig := newTestRig(
		[]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)},
		WithOrbitBinding(common.MouseButtonLeft, common.KeyLeftControl),
	)
	initRig(t, rig)
	c := rig.Controller

	in := newSnapshot(center)
	in.Mouse.Press(common.MouseButtonLeft)
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{80, 0})
	if c.TargetAlpha != 0 {
		t.Errorf("orbited without the modifier: alpha %v", c.TargetAlpha)
	}

	in.Keys.Press(common.KeyLeftControl)
	UpdateController(rig, activeFor(rig), in, mgl32.Vec2{80, 0})
	if c.TargetAlpha == 0 {
		t.Errorf("did not orbit with the modifier held")
	}
}

func TestUpdateIgnoresInputWhenGated(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(rig Rig, in *input.Snapshot, active *ActiveCameraData)
	}{
		{"pointer over ui", func(_ Rig, in *input.Snapshot, _ *ActiveCameraData) { in.PointerOverUI = true }},
		{"disabled", func(rig Rig, _ *input.Snapshot, _ *ActiveCameraData) { rig.Controller.Enabled = false }},
		{"not active", func(_ Rig, _ *input.Snapshot, active *ActiveCameraData) { active.Entity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)})
			initRig(t, rig)

			in := newSnapshot(center)
			in.Scroll = []input.ScrollEvent{{Unit: input.ScrollLine, Y: 3}}
			in.Mouse.Press(common.MouseButtonLeft)
			active := activeFor(rig)
			tc.mutate(rig, in, &active)

			if UpdateController(rig, active, in, mgl32.Vec2{100, 100}) {
				t.Errorf("gated update wrote the transform")
			}
			if rig.Controller.TargetRadius != 5 || rig.Controller.TargetAlpha != 0 {
				t.Errorf("gated update changed targets: radius %v, alpha %v",
					rig.Controller.TargetRadius, rig.Controller.TargetAlpha)
			}
		})
	}
}

func TestUpdateGatedRigKeepsSmoothing(t *testing.T) {
	rig := newTestRig([]camera.CameraBuilderOption{camera.WithPosition(0, 0, 5)})
	initRig(t, rig)
	rig.Controller.TargetRadius = 10

	if !UpdateController(rig, ActiveCameraData{}, newSnapshot(center), mgl32.Vec2{}) {
		t.Fatalf("inactive rig stopped interpolating")
	}
	if r := *rig.Controller.Radius; r <= 5 || r >= 10 {
		t.Errorf("radius = %v, want between 5 and 10", r)
	}
}
