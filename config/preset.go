// Package config loads orbit camera setups from YAML files.
//
// A file lists rigs; each rig describes a camera (projection, placement, viewport) and the orbit
// controller driving it:
//
//	rigs:
//	  - name: main
//	    camera:
//	      projection: perspective
//	      position: [0, 1.5, 5]
//	    controller:
//	      focus: [0, 0, 0]
//	      pan: {button: right, modifier: shift}
//	      zoom: {min: 1, max: 20}
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Range is an optional pair of bounds.
type Range struct {
	Min *float32 `yaml:"min,omitempty"`
	Max *float32 `yaml:"max,omitempty"`
}

func (r Range) limits() orbit.Limits {
	return orbit.Limits{Lower: r.Min, Upper: r.Max}
}

func rangeOf(l orbit.Limits) Range {
	return Range{Min: l.Lower, Max: l.Upper}
}

// Binding configures one mouse interaction.
type Binding struct {
	Sensitivity *float32 `yaml:"sensitivity,omitempty"`
	Smoothness  *float32 `yaml:"smoothness,omitempty"`
	Button      string   `yaml:"button,omitempty"`
	Modifier    string   `yaml:"modifier,omitempty"`
}

// Zoom configures zooming.
type Zoom struct {
	Sensitivity *float32 `yaml:"sensitivity,omitempty"`
	Smoothness  *float32 `yaml:"smoothness,omitempty"`
	Reversed    bool     `yaml:"reversed,omitempty"`
	Min         *float32 `yaml:"min,omitempty"`
	Max         *float32 `yaml:"max,omitempty"`
}

// Preset is the YAML form of an orbit controller.
type Preset struct {
	Focus  []float32 `yaml:"focus,omitempty"`
	Radius *float32  `yaml:"radius,omitempty"`
	Scale  *float32  `yaml:"scale,omitempty"`
	Alpha  *float32  `yaml:"alpha,omitempty"`
	Beta   *float32  `yaml:"beta,omitempty"`

	Orbit Binding `yaml:"orbit,omitempty"`
	Pan   Binding `yaml:"pan,omitempty"`
	Zoom  Zoom    `yaml:"zoom,omitempty"`

	AlphaLimits Range `yaml:"alpha_limits,omitempty"`
	BetaLimits  Range `yaml:"beta_limits,omitempty"`
	FocusX      Range `yaml:"focus_x,omitempty"`
	FocusY      Range `yaml:"focus_y,omitempty"`
	FocusZ      Range `yaml:"focus_z,omitempty"`

	TouchpadOrbitModifier string `yaml:"touchpad_orbit_modifier,omitempty"`
	AllowUpsideDown       bool   `yaml:"allow_upside_down,omitempty"`
	Enabled               *bool  `yaml:"enabled,omitempty"`
}

// CameraPreset is the YAML form of a camera.
type CameraPreset struct {
	// Projection is "perspective" (default) or "orthographic".
	Projection string    `yaml:"projection,omitempty"`
	Fov        *float32  `yaml:"fov,omitempty"`
	Near       *float32  `yaml:"near,omitempty"`
	Far        *float32  `yaml:"far,omitempty"`
	Scale      *float32  `yaml:"scale,omitempty"`
	Position   []float32 `yaml:"position,omitempty"`
	Order      int       `yaml:"order,omitempty"`
	// Viewport is [x, y, width, height] in logical pixels. Omit to cover the whole window.
	Viewport []float32 `yaml:"viewport,omitempty"`
}

// RigPreset pairs a camera with its controller.
type RigPreset struct {
	Name       string       `yaml:"name"`
	Camera     CameraPreset `yaml:"camera"`
	Controller Preset       `yaml:"controller"`
}

// File is the top-level YAML document.
type File struct {
	Rigs []RigPreset `yaml:"rigs"`
}

// Load decodes a File from r.
//
// Parameters:
//   - r: the YAML source
//
// Returns:
//   - *File: the decoded file
//   - error: error if decoding fails
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode orbit config: %w", err)
	}
	return &f, nil
}

// LoadFile reads and decodes a File from disk.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - *File: the decoded file
//   - error: error if the file cannot be read or decoded
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orbit config %s: %w", path, err)
	}
	f, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Save encodes f as YAML into w.
//
// Parameters:
//   - w: the destination
//   - f: the file to encode
//
// Returns:
//   - error: error if encoding fails
func Save(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode orbit config: %w", err)
	}
	return enc.Close()
}

// Rig looks up a rig by name.
//
// Parameters:
//   - name: the rig name
//
// Returns:
//   - RigPreset: the rig
//   - bool: false if no rig has that name
func (f *File) Rig(name string) (RigPreset, bool) {
	for _, r := range f.Rigs {
		if r.Name == name {
			return r, true
		}
	}
	return RigPreset{}, false
}

// Options converts the preset into controller options. Unset values keep NewController defaults.
//
// Returns:
//   - []orbit.ControllerOption: the options
//   - error: error if a vector has the wrong length or a key/button name is unknown
func (p Preset) Options() ([]orbit.ControllerOption, error) {
	var opts []orbit.ControllerOption

	if p.Focus != nil {
		focus, err := vec3(p.Focus, "focus")
		if err != nil {
			return nil, err
		}
		opts = append(opts, orbit.WithFocus(focus[0], focus[1], focus[2]))
	}
	if p.Radius != nil {
		opts = append(opts, orbit.WithRadius(*p.Radius))
	}
	if p.Scale != nil {
		opts = append(opts, orbit.WithScale(*p.Scale))
	}
	if p.Alpha != nil || p.Beta != nil {
		alpha, beta := p.Alpha, p.Beta
		opts = append(opts, func(c *orbit.Controller) {
			c.Alpha = alpha
			c.Beta = beta
		})
	}

	defaults := orbit.NewController()
	opts = append(opts,
		orbit.WithOrbit(
			common.Deref(p.Orbit.Sensitivity, defaults.OrbitSensitivity),
			common.Deref(p.Orbit.Smoothness, defaults.OrbitSmoothness)),
		orbit.WithPan(
			common.Deref(p.Pan.Sensitivity, defaults.PanSensitivity),
			common.Deref(p.Pan.Smoothness, defaults.PanSmoothness)),
		orbit.WithZoom(
			common.Deref(p.Zoom.Sensitivity, defaults.ZoomSensitivity),
			common.Deref(p.Zoom.Smoothness, defaults.ZoomSmoothness)),
	)

	orbitButton, orbitModifier, err := binding(p.Orbit, "left", "orbit")
	if err != nil {
		return nil, err
	}
	panButton, panModifier, err := binding(p.Pan, "right", "pan")
	if err != nil {
		return nil, err
	}
	touchpad, err := ParseKey(p.TouchpadOrbitModifier)
	if err != nil {
		return nil, fmt.Errorf("touchpad_orbit_modifier: %w", err)
	}
	opts = append(opts,
		orbit.WithOrbitBinding(orbitButton, orbitModifier),
		orbit.WithPanBinding(panButton, panModifier),
		orbit.WithTouchpadOrbitModifier(touchpad),
	)

	opts = append(opts,
		orbit.WithAlphaLimits(p.AlphaLimits.limits()),
		orbit.WithBetaLimits(p.BetaLimits.limits()),
		orbit.WithZoomLimits(orbit.Limits{Lower: p.Zoom.Min, Upper: p.Zoom.Max}),
		orbit.WithFocusLimits(p.FocusX.limits(), p.FocusY.limits(), p.FocusZ.limits()),
		orbit.WithReversedZoom(p.Zoom.Reversed),
		orbit.WithAllowUpsideDown(p.AllowUpsideDown),
		orbit.WithEnabled(common.Deref(p.Enabled, true)),
	)
	return opts, nil
}

// Controller builds a controller from the preset.
//
// Returns:
//   - *orbit.Controller: the controller
//   - error: error if the preset is invalid
func (p Preset) Controller() (*orbit.Controller, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return orbit.NewController(opts...), nil
}

// Options converts the camera preset into camera options.
//
// Returns:
//   - []camera.CameraBuilderOption: the options
//   - error: error if the projection name or a vector is invalid
func (cp CameraPreset) Options() ([]camera.CameraBuilderOption, error) {
	var opts []camera.CameraBuilderOption

	switch strings.ToLower(common.Coalesce(cp.Projection, "perspective")) {
	case "perspective":
		def := camera.DefaultPerspective()
		fov := def.Fov
		if cp.Fov != nil {
			fov = mgl32.DegToRad(*cp.Fov)
		}
		opts = append(opts, camera.WithPerspective(fov, common.Deref(cp.Near, def.Near), common.Deref(cp.Far, def.Far)))
	case "orthographic", "ortho":
		o := camera.DefaultOrthographic()
		o.Scale = common.Deref(cp.Scale, o.Scale)
		o.Near = common.Deref(cp.Near, o.Near)
		o.Far = common.Deref(cp.Far, o.Far)
		opts = append(opts, camera.WithProjection(o))
	default:
		return nil, fmt.Errorf("unknown projection %q", cp.Projection)
	}

	if cp.Position != nil {
		pos, err := vec3(cp.Position, "position")
		if err != nil {
			return nil, err
		}
		opts = append(opts, camera.WithPosition(pos[0], pos[1], pos[2]))
	}
	if cp.Order != 0 {
		opts = append(opts, camera.WithOrder(cp.Order))
	}
	if cp.Viewport != nil {
		if len(cp.Viewport) != 4 {
			return nil, fmt.Errorf("viewport: want [x, y, width, height], got %d values", len(cp.Viewport))
		}
		v := cp.Viewport
		opts = append(opts, camera.WithViewport(v[0], v[1], v[2], v[3]))
	}
	return opts, nil
}

// Build creates the camera and controller described by the rig.
//
// Parameters:
//   - extra: additional camera options applied after the preset's (e.g. a window target)
//
// Returns:
//   - orbit.Rig: the camera and controller
//   - error: error if the preset is invalid
func (rp RigPreset) Build(extra ...camera.CameraBuilderOption) (orbit.Rig, error) {
	camOpts, err := rp.Camera.Options()
	if err != nil {
		return orbit.Rig{}, fmt.Errorf("rig %q camera: %w", rp.Name, err)
	}
	ctrl, err := rp.Controller.Controller()
	if err != nil {
		return orbit.Rig{}, fmt.Errorf("rig %q controller: %w", rp.Name, err)
	}
	return orbit.Rig{
		Camera:     camera.NewCamera(append(camOpts, extra...)...),
		Controller: ctrl,
	}, nil
}

// FromController captures a controller's current targets and settings as a preset, so a tuned
// camera can be saved and restored.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - Preset: the preset
func FromController(c *orbit.Controller) Preset {
	// Scale only means something once an orthographic camera has set it.
	var scale *float32
	if c.Scale != nil {
		scale = common.Ptr(c.TargetScale)
	}
	return Preset{
		Focus:  []float32{c.TargetFocus[0], c.TargetFocus[1], c.TargetFocus[2]},
		Radius: common.Ptr(c.TargetRadius),
		Scale:  scale,
		Alpha:  common.Ptr(c.TargetAlpha),
		Beta:   common.Ptr(c.TargetBeta),
		Orbit: Binding{
			Sensitivity: common.Ptr(c.OrbitSensitivity),
			Smoothness:  common.Ptr(c.OrbitSmoothness),
			Button:      buttonName(c.ButtonOrbit),
			Modifier:    keyName(c.ModifierOrbit),
		},
		Pan: Binding{
			Sensitivity: common.Ptr(c.PanSensitivity),
			Smoothness:  common.Ptr(c.PanSmoothness),
			Button:      buttonName(c.ButtonPan),
			Modifier:    keyName(c.ModifierPan),
		},
		Zoom: Zoom{
			Sensitivity: common.Ptr(c.ZoomSensitivity),
			Smoothness:  common.Ptr(c.ZoomSmoothness),
			Reversed:    c.ReversedZoom,
			Min:         c.ZoomLimits.Lower,
			Max:         c.ZoomLimits.Upper,
		},
		AlphaLimits:           rangeOf(c.AlphaLimits),
		BetaLimits:            rangeOf(c.BetaLimits),
		FocusX:                rangeOf(c.FocusXLimits),
		FocusY:                rangeOf(c.FocusYLimits),
		FocusZ:                rangeOf(c.FocusZLimits),
		TouchpadOrbitModifier: keyName(c.ModifierOrbitTouchpad),
		AllowUpsideDown:       c.AllowUpsideDown,
		Enabled:               common.Ptr(c.Enabled),
	}
}

func binding(b Binding, defaultButton, what string) (common.MouseButton, common.Key, error) {
	button, err := ParseButton(common.Coalesce(b.Button, defaultButton))
	if err != nil {
		return 0, common.KeyNone, fmt.Errorf("%s.button: %w", what, err)
	}
	modifier, err := ParseKey(b.Modifier)
	if err != nil {
		return 0, common.KeyNone, fmt.Errorf("%s.modifier: %w", what, err)
	}
	return button, modifier, nil
}

func vec3(v []float32, what string) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%s: want 3 values, got %d", what, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
