package config

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
	"github.com/go-gl/mathgl/mgl32"
)

const sample = `
rigs:
  - name: main
    camera:
      position: [0, 1.5, 5]
      fov: 60
    controller:
      focus: [1, 0, 0]
      orbit: {sensitivity: 2, smoothness: 0}
      pan: {button: middle, modifier: shift}
      zoom: {reversed: true, min: 1, max: 20}
      beta_limits: {min: -1.5, max: 1.5}
      touchpad_orbit_modifier: ctrl
  - name: map
    camera:
      projection: orthographic
      scale: 0.25
      order: 1
      viewport: [0, 0, 320, 240]
    controller:
      enabled: false
`

func TestLoadBuildsControllers(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Rigs) != 2 {
		t.Fatalf("rigs = %d, want 2", len(f.Rigs))
	}

	rp, ok := f.Rig("main")
	if !ok {
		t.Fatalf("rig main not found")
	}
	rig, err := rp.Build(camera.WithWindow(1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	c := rig.Controller
	if c.Focus != (mgl32.Vec3{1, 0, 0}) || c.TargetFocus != c.Focus {
		t.Errorf("focus = %v / %v", c.Focus, c.TargetFocus)
	}
	if c.OrbitSensitivity != 2 || c.OrbitSmoothness != 0 {
		t.Errorf("orbit = %v/%v", c.OrbitSensitivity, c.OrbitSmoothness)
	}
	if c.PanSensitivity != 1 || c.PanSmoothness != 0.6 {
		t.Errorf("pan kept defaults? %v/%v", c.PanSensitivity, c.PanSmoothness)
	}
	if c.ButtonOrbit != common.MouseButtonLeft || c.ModifierOrbit != common.KeyNone {
		t.Errorf("orbit binding = %v+%v", c.ButtonOrbit, c.ModifierOrbit)
	}
	if c.ButtonPan != common.MouseButtonMiddle || c.ModifierPan != common.KeyLeftShift {
		t.Errorf("pan binding = %v+%v", c.ButtonPan, c.ModifierPan)
	}
	if c.ModifierOrbitTouchpad != common.KeyLeftControl || !c.ReversedZoom || !c.Enabled {
		t.Errorf("controller flags = %+v", c)
	}
	if c.ZoomLimits.Apply(100) != 20 || c.BetaLimits.Apply(-3) != -1.5 || c.AlphaLimits.Lower != nil {
		t.Errorf("limits not applied")
	}

	if rig.Camera.Target() != camera.WindowTarget(1) {
		t.Errorf("extra options not applied: %+v", rig.Camera.Target())
	}
	if rig.Camera.Transform().Position != (mgl32.Vec3{0, 1.5, 5}) {
		t.Errorf("position = %v", rig.Camera.Transform().Position)
	}
	p := rig.Camera.Projection().(camera.PerspectiveProjection)
	if math.Abs(float64(p.Fov)-math.Pi/3) > 1e-6 {
		t.Errorf("fov = %v, want 60 degrees in radians", p.Fov)
	}
}

func TestLoadOrthographicRig(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rp, _ := f.Rig("map")
	rig, err := rp.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	o, ok := rig.Camera.Projection().(camera.OrthographicProjection)
	if !ok || o.Scale != 0.25 {
		t.Errorf("projection = %+v", rig.Camera.Projection())
	}
	if o.ViewportSize != (mgl32.Vec2{320, 240}) {
		t.Errorf("viewport size = %v", o.ViewportSize)
	}
	if rig.Camera.Order() != 1 {
		t.Errorf("order = %d", rig.Camera.Order())
	}
	if rig.Controller.Enabled {
		t.Errorf("controller should be disabled")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"unknown field", "rigs:\n  - name: a\n    camera: {zoom: 3}\n"},
		{"bad projection", "rigs:\n  - name: a\n    camera: {projection: fisheye}\n"},
		{"bad button", "rigs:\n  - name: a\n    controller: {orbit: {button: thumb}}\n"},
		{"bad modifier", "rigs:\n  - name: a\n    controller: {pan: {modifier: hyper}}\n"},
		{"short focus", "rigs:\n  - name: a\n    controller: {focus: [1, 2]}\n"},
		{"short viewport", "rigs:\n  - name: a\n    camera: {viewport: [0, 0, 10]}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Load(strings.NewReader(tc.yaml))
			if err != nil {
				return
			}
			if _, err := f.Rigs[0].Build(); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	if err != nil || len(f.Rigs) != 0 {
		t.Errorf("empty input = (%+v, %v)", f, err)
	}
	if _, ok := f.Rig("missing"); ok {
		t.Errorf("found a rig in an empty file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	ctrl := orbit.NewController(
		orbit.WithFocus(0, 2, 0),
		orbit.WithPanBinding(common.MouseButtonLeft, common.KeyLeftAlt),
		orbit.WithZoomLimits(orbit.Bounded(2, 8)),
		orbit.WithAllowUpsideDown(true),
	)
	ctrl.TargetAlpha = 0.5
	ctrl.TargetBeta = -0.25
	ctrl.TargetRadius = 6

	var buf bytes.Buffer
	in := &File{Rigs: []RigPreset{{Name: "saved", Controller: FromController(ctrl)}}}
	if err := Save(&buf, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rp, ok := out.Rig("saved")
	if !ok {
		t.Fatalf("saved rig missing")
	}
	if rp.Controller.Scale != nil {
		t.Errorf("perspective controller saved a scale")
	}

	got, err := rp.Controller.Controller()
	if err != nil {
		t.Fatalf("Controller: %v", err)
	}
	if got.Focus != (mgl32.Vec3{0, 2, 0}) || *got.Alpha != 0.5 || *got.Beta != -0.25 || *got.Radius != 6 {
		t.Errorf("restored state = focus %v alpha %v beta %v radius %v", got.Focus, *got.Alpha, *got.Beta, *got.Radius)
	}
	if got.ButtonPan != common.MouseButtonLeft || got.ModifierPan != common.KeyLeftAlt {
		t.Errorf("pan binding = %v+%v", got.ButtonPan, got.ModifierPan)
	}
	if got.ZoomLimits.Apply(1) != 2 || got.ZoomLimits.Apply(10) != 8 || !got.AllowUpsideDown {
		t.Errorf("restored limits/flags differ")
	}
}
