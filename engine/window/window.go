package window

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// windowCount hands out window ids. Ids start at 1 so the zero id never names a real window.
var windowCount atomic.Uint64

// Window provides platform windowing and forwards its input events into an input.Collector.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// ID returns the id cameras use to target this window.
	//
	// Returns:
	//   - common.WindowID: the window id
	ID() common.WindowID

	// AttachCollector routes this window's pointer, key, scroll and size events into c.
	// The window's current size is reported immediately.
	//
	// Parameters:
	//   - c: the collector to feed (or nil to detach)
	AttachCollector(c *input.Collector)

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new logical width and height
	SetResizeCallback(callback func(width, height int))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current logical window width.
	//
	// Returns:
	//   - int: width in screen coordinates
	Width() int

	// Height returns the current logical window height.
	//
	// Returns:
	//   - int: height in screen coordinates
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event routing.
type engineWindow struct {
	id common.WindowID

	// title is the window title displayed in the title bar.
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the logical client area size, the space cursor positions are reported in.
	width  int
	height int

	// closeOnEscape closes the window when Escape is pressed.
	closeOnEscape bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	collector atomic.Pointer[input.Collector]

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		id:            common.WindowID(windowCount.Add(1)),
		title:         "Orbit Viewer",
		maxWidth:      3840,
		maxHeight:     2160,
		minWidth:      320,
		minHeight:     200,
		width:         1280,
		height:        720,
		closeOnEscape: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) ID() common.WindowID {
	return w.id
}

func (w *engineWindow) AttachCollector(c *input.Collector) {
	w.collector.Store(c)
	if c != nil {
		c.ResizeWindow(w.id, float32(w.width), float32(w.height))
	}
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	if c := w.collector.Load(); c != nil {
		c.RemoveWindow(w.id)
	}
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// resized records a new logical size and notifies the collector and resize callback.
func (w *engineWindow) resized(width, height int) {
	w.width = width
	w.height = height
	if c := w.collector.Load(); c != nil {
		c.ResizeWindow(w.id, float32(width), float32(height))
	}
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
