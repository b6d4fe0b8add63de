package orbit

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	testWindow common.WindowID = 1
	frame60    float32         = 1.0 / 60.0
)

var testWindowSize = mgl32.Vec2{800, 600}

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func approxVec3(a, b mgl32.Vec3, eps float32) bool {
	return approx(a[0], b[0], eps) && approx(a[1], b[1], eps) && approx(a[2], b[2], eps)
}

// newTestRig creates a window-backed camera sized to testWindowSize.
func newTestRig(camOpts []camera.CameraBuilderOption, ctrlOpts ...ControllerOption) Rig {
	opts := append([]camera.CameraBuilderOption{
		camera.WithWindow(testWindow),
		camera.WithTargetSize(testWindowSize[0], testWindowSize[1]),
	}, camOpts...)
	return Rig{
		Camera:     camera.NewCamera(opts...),
		Controller: NewController(ctrlOpts...),
	}
}

// newSnapshot returns a 60 Hz frame with the pointer at cursor inside testWindow.
func newSnapshot(cursor mgl32.Vec2) *input.Snapshot {
	in := input.NewSnapshot()
	in.DeltaTime = frame60
	in.PrimaryWindow = testWindow
	in.Windows[testWindow] = input.WindowState{
		Size:         testWindowSize,
		Cursor:       cursor,
		CursorInside: true,
	}
	return in
}

// activeFor is the record the resolver would produce for a full-window rig.
func activeFor(rig Rig) ActiveCameraData {
	size, _ := rig.Camera.LogicalViewportSize()
	return ActiveCameraData{
		Entity:       rig.Camera.ID(),
		ViewportSize: size,
		WindowSize:   testWindowSize,
	}
}

// initRig runs the first update so the controller derives its state from the camera.
func initRig(t *testing.T, rig Rig) {
	t.Helper()
	if !UpdateController(rig, ActiveCameraData{}, newSnapshot(mgl32.Vec2{}), mgl32.Vec2{}) {
		t.Fatalf("expected the first update to write the transform")
	}
	if !rig.Controller.Initialized {
		t.Fatalf("expected controller to be initialized")
	}
}
