package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Collector accumulates host input events between frames and hands them out as a Snapshot.
// Window callbacks feed it from the event thread while the tick loop drains it, so every method
// is safe for concurrent use.
type Collector struct {
	mu *sync.Mutex

	mouse ButtonInput[common.MouseButton]
	keys  ButtonInput[common.Key]

	motion  []mgl32.Vec2
	scroll  []ScrollEvent
	magnify []float32
	rotate  []float32

	windows       map[common.WindowID]WindowState
	primaryWindow common.WindowID
	primarySet    bool

	pointerOverUI bool
}

// NewCollector creates an empty Collector.
//
// Returns:
//   - *Collector: the collector
func NewCollector() *Collector {
	return &Collector{
		mu:      &sync.Mutex{},
		windows: make(map[common.WindowID]WindowState),
	}
}

// SetPrimaryWindow selects which window cameras targeting "the primary window" resolve to.
// Without a call, the first window the collector hears about is primary.
//
// Parameters:
//   - id: the window id
func (c *Collector) SetPrimaryWindow(id common.WindowID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primaryWindow = id
	c.primarySet = true
}

// PressButton records a pointer button going down.
func (c *Collector) PressButton(b common.MouseButton) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouse.Press(b)
}

// ReleaseButton records a pointer button going up.
func (c *Collector) ReleaseButton(b common.MouseButton) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouse.Release(b)
}

// PressKey records a key going down.
func (c *Collector) PressKey(k common.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys.Press(k)
}

// ReleaseKey records a key going up.
func (c *Collector) ReleaseKey(k common.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys.Release(k)
}

// ReleaseAll drops every held button and key, e.g. when the window loses focus.
func (c *Collector) ReleaseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouse.Reset()
	c.keys.Reset()
}

// MoveCursor records the pointer position inside a window. The change from the previous position
// in the same window is queued as a motion delta.
//
// Parameters:
//   - win: the window the pointer is over
//   - x, y: logical position (origin top-left)
func (c *Collector) MoveCursor(win common.WindowID, x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ws := c.window(win)
	pos := mgl32.Vec2{x, y}
	if ws.CursorInside {
		if d := pos.Sub(ws.Cursor); !common.IsZero2(d) {
			c.motion = append(c.motion, d)
		}
	}
	ws.Cursor = pos
	ws.CursorInside = true
	c.windows[win] = ws
}

// LeaveWindow records the pointer leaving a window.
//
// Parameters:
//   - win: the window the pointer left
func (c *Collector) LeaveWindow(win common.WindowID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ws := c.window(win)
	ws.CursorInside = false
	c.windows[win] = ws
}

// ResizeWindow records a window's logical size.
//
// Parameters:
//   - win: the window id
//   - width, height: logical size
func (c *Collector) ResizeWindow(win common.WindowID, width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ws := c.window(win)
	ws.Size = mgl32.Vec2{width, height}
	c.windows[win] = ws
}

// RemoveWindow forgets a closed window.
func (c *Collector) RemoveWindow(win common.WindowID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.windows, win)
}

// AddMotion queues a raw pointer-motion delta (e.g. from a relative-mode mouse).
//
// Parameters:
//   - dx, dy: motion in logical pixels
func (c *Collector) AddMotion(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.motion = append(c.motion, mgl32.Vec2{dx, dy})
}

// Scroll queues a scroll event.
//
// Parameters:
//   - unit: line or pixel
//   - x, y: scroll magnitude
func (c *Collector) Scroll(unit ScrollUnit, x, y float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scroll = append(c.scroll, ScrollEvent{Unit: unit, X: x, Y: y})
}

// Magnify queues a trackpad pinch gesture amount.
func (c *Collector) Magnify(amount float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.magnify = append(c.magnify, amount)
}

// Rotate queues a trackpad rotate gesture angle delta in radians.
func (c *Collector) Rotate(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotate = append(c.rotate, angle)
}

// SetPointerOverUI records whether a UI overlay currently owns the pointer.
func (c *Collector) SetPointerOverUI(over bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointerOverUI = over
}

// Frame returns everything collected since the previous call and starts a new frame:
// event queues are emptied and just-pressed / just-released state is cleared.
// Held buttons, window sizes and cursor positions carry over.
//
// Parameters:
//   - deltaTime: frame duration in seconds
//
// Returns:
//   - *Snapshot: the input for this frame
func (c *Collector) Frame(deltaTime float32) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &Snapshot{
		DeltaTime:     deltaTime,
		Mouse:         c.mouse.Clone(),
		Keys:          c.keys.Clone(),
		MouseMotion:   c.motion,
		Scroll:        c.scroll,
		Magnify:       c.magnify,
		Rotate:        c.rotate,
		Windows:       make(map[common.WindowID]WindowState, len(c.windows)),
		PrimaryWindow: c.primaryWindow,
		PointerOverUI: c.pointerOverUI,
	}
	for id, ws := range c.windows {
		s.Windows[id] = ws
	}

	c.motion = nil
	c.scroll = nil
	c.magnify = nil
	c.rotate = nil
	c.mouse.ClearFrame()
	c.keys.ClearFrame()
	return s
}

// window returns the state for win, registering it (and electing it primary if none is set).
// Caller must hold the mutex.
func (c *Collector) window(win common.WindowID) WindowState {
	ws, ok := c.windows[win]
	if !ok && !c.primarySet {
		c.primaryWindow = win
		c.primarySet = true
	}
	return ws
}
