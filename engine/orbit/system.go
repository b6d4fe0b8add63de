package orbit

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// System owns every orbit-controlled camera and runs the resolver and update engine once per tick.
type System interface {
	// Add registers a camera with its controller. A nil controller gets NewController() defaults.
	// Adding an already registered camera replaces its controller.
	//
	// Parameters:
	//   - cam: the camera to drive
	//   - ctrl: its controller
	Add(cam camera.Camera, ctrl *Controller)

	// Remove unregisters a camera. If it was the active camera the record is reset.
	//
	// Parameters:
	//   - id: the camera to remove
	//
	// Returns:
	//   - bool: true if the camera was registered
	Remove(id camera.ID) bool

	// Camera returns a registered camera, or nil.
	Camera(id camera.ID) camera.Camera

	// Controller returns the controller of a registered camera, or nil.
	Controller(id camera.ID) *Controller

	// Rigs returns a copy of the registered rigs in registration order.
	Rigs() []Rig

	// ActiveCamera returns the current active-camera record.
	ActiveCamera() ActiveCameraData

	// SetActiveCamera replaces the active-camera record. Set Manual to keep the resolver from
	// overwriting it.
	SetActiveCamera(rec ActiveCameraData)

	// Tick runs one frame: syncs window-backed camera target sizes from the snapshot, resolves the
	// active camera, then updates every controller.
	//
	// Parameters:
	//   - in: this frame's input
	//
	// Returns:
	//   - TickStats: counts for this frame
	Tick(in *input.Snapshot) TickStats
}

// TickStats summarizes one System.Tick.
type TickStats struct {
	Cameras       int
	Updated       int
	ActiveChanged bool
	Active        camera.ID
}

type system struct {
	mu     sync.Mutex
	rigs   []Rig
	index  map[camera.ID]int
	active ActiveCameraData

	workers int
	pool    worker.DynamicWorkerPool
	verbose bool
}

var _ System = &system{}

// NewSystem creates an empty System.
//
// Parameters:
//   - options: functional options to configure the system
//
// Returns:
//   - System: the newly created system
func NewSystem(options ...SystemOption) System {
	s := &system{
		rigs:  make([]Rig, 0, 4),
		index: make(map[camera.ID]int),
	}

	for _, option := range options {
		option(s)
	}

	// Workers idle out after a second so a paused app holds no goroutines.
	if s.workers > 1 {
		s.pool = worker.NewDynamicWorkerPool(s.workers, 64, 1*time.Second)
	}
	return s
}

func (s *system) Add(cam camera.Camera, ctrl *Controller) {
	if cam == nil {
		return
	}
	if ctrl == nil {
		ctrl = NewController()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[cam.ID()]; ok {
		s.rigs[i] = Rig{Camera: cam, Controller: ctrl}
		return
	}
	s.index[cam.ID()] = len(s.rigs)
	s.rigs = append(s.rigs, Rig{Camera: cam, Controller: ctrl})
}

func (s *system) Remove(id camera.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.rigs = append(s.rigs[:i], s.rigs[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.rigs); j++ {
		s.index[s.rigs[j].Camera.ID()] = j
	}
	if s.active.Entity == id {
		s.active = ActiveCameraData{}
	}
	return true
}

func (s *system) Camera(id camera.ID) camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[id]; ok {
		return s.rigs[i].Camera
	}
	return nil
}

func (s *system) Controller(id camera.ID) *Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[id]; ok {
		return s.rigs[i].Controller
	}
	return nil
}

func (s *system) Rigs() []Rig {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Rig, len(s.rigs))
	copy(out, s.rigs)
	return out
}

func (s *system) ActiveCamera() ActiveCameraData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *system) SetActiveCamera(rec ActiveCameraData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = rec
}

func (s *system) Tick(in *input.Snapshot) TickStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncTargetSizes(in)

	next, changed := ResolveActive(s.active, s.rigs, in)
	if changed {
		if s.verbose {
			log.Printf("[Orbit] active camera %d -> %d (viewport %.0fx%.0f)\n",
				s.active.Entity, next.Entity, next.ViewportSize[0], next.ViewportSize[1])
		}
		s.active = next
	}

	stats := TickStats{
		Cameras:       len(s.rigs),
		ActiveChanged: changed,
		Active:        s.active.Entity,
	}

	mouseDelta := in.MotionSum()
	if s.pool == nil || len(s.rigs) < 2 {
		for _, rig := range s.rigs {
			if UpdateController(rig, s.active, in, mouseDelta) {
				stats.Updated++
			}
		}
		return stats
	}

	// Each rig owns its controller and camera, so rigs update independently. A WaitGroup is the
	// per-frame barrier since the pool itself only drains when workers idle out.
	var wg sync.WaitGroup
	var updated atomic.Int32
	active := s.active
	for i, rig := range s.rigs {
		wg.Add(1)
		r := rig
		s.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				if UpdateController(r, active, in, mouseDelta) {
					updated.Add(1)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	stats.Updated = int(updated.Load())
	return stats
}

// syncTargetSizes copies each window's logical size onto the cameras rendering to it.
func (s *system) syncTargetSizes(in *input.Snapshot) {
	for _, rig := range s.rigs {
		target := rig.Camera.Target()
		if target.Kind != camera.TargetWindow {
			continue
		}
		winID := target.Window
		if target.Primary {
			winID = in.PrimaryWindow
		}
		if win, ok := in.Window(winID); ok && win.Size != rig.Camera.TargetSize() {
			rig.Camera.SetTargetSize(win.Size)
		}
	}
}
