package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/orbit"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Input is collected and cameras are updated at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets the window whose input drives the cameras. Without a window the engine runs
// headless and input is pushed into the collector by the host.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithSystem sets the orbit camera system the engine ticks. Defaults to orbit.NewSystem().
//
// Parameters:
//   - sys: the orbit system
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSystem(sys orbit.System) EngineBuilderOption {
	return func(e *engine) {
		e.system = sys
	}
}

// WithCollector sets the input collector the engine drains each tick. Defaults to a new collector.
//
// Parameters:
//   - c: the collector
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCollector(c *input.Collector) EngineBuilderOption {
	return func(e *engine) {
		e.collector = c
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
