package orbit

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Rig pairs a camera instance with its orbit controller.
type Rig struct {
	Camera     camera.Camera
	Controller *Controller
}

// ActiveCameraData records which camera handles input, plus the sizes used to scale pointer motion.
// The zero value means "no active camera". Records compare with ==.
type ActiveCameraData struct {
	// Entity is the active camera, or 0 when none is active.
	Entity camera.ID
	// ViewportSize scales pan motion. Zero when unknown.
	ViewportSize mgl32.Vec2
	// WindowSize scales orbit motion. Zero when unknown.
	WindowSize mgl32.Vec2
	// Manual hands ownership of the record to external code: the resolver leaves it alone.
	// Use this to drive cameras that render to images, or to pin input to one camera.
	Manual bool
}

// HasEntity reports whether a camera is active.
func (a ActiveCameraData) HasEntity() bool {
	return a.Entity != 0
}

// inputJustActivated reports whether this rig's bindings started an interaction this frame.
func inputJustActivated(ctrl *Controller, in *input.Snapshot) bool {
	return ctrl.orbitJustPressed(in) || ctrl.panJustPressed(in) || in.HasScroll()
}

// ResolveActive decides which camera receives this frame's input.
//
// Nothing changes unless some rig saw a just-pressed orbit/pan combo or any scroll event. Otherwise the
// pointer is tested against the viewport of every window-backed rig that saw such input; when viewports
// overlap, the highest draw order wins and ties go to the later rig. A manual record is never touched.
//
// A window-backed camera whose window is missing from the snapshot is a host integration bug and panics.
//
// Parameters:
//   - current: the record from the previous frame
//   - rigs: all cameras, in registration order
//   - in: this frame's input
//
// Returns:
//   - ActiveCameraData: the record to use this frame
//   - bool: true if it differs from current
func ResolveActive(current ActiveCameraData, rigs []Rig, in *input.Snapshot) (ActiveCameraData, bool) {
	if current.Manual {
		return current, false
	}

	var next ActiveCameraData
	hasInput := false
	found := false
	maxOrder := 0

	for _, rig := range rigs {
		if !inputJustActivated(rig.Controller, in) {
			continue
		}
		hasInput = true

		target := rig.Camera.Target()
		if target.Kind != camera.TargetWindow {
			continue
		}
		winID := target.Window
		if target.Primary {
			winID = in.PrimaryWindow
		}
		win, ok := in.Window(winID)
		if !ok {
			panic(fmt.Sprintf("window %d must exist, since camera %d is referencing it", winID, rig.Camera.ID()))
		}

		cursor, inside := win.CursorPosition()
		if !inside {
			continue
		}
		rect, ok := rig.Camera.LogicalViewportRect()
		if !ok || !rect.ContainsStrict(cursor) {
			continue
		}

		order := rig.Camera.Order()
		if found && order < maxOrder {
			continue
		}
		next = ActiveCameraData{
			Entity:       rig.Camera.ID(),
			ViewportSize: rect.Size(),
			WindowSize:   win.Size,
		}
		maxOrder = order
		found = true
	}

	if !hasInput || next == current {
		return current, false
	}
	return next, true
}
