package engine

import (
	"github.com/Carmen-Shannon/oxy-rt/engine/display"
	"github.com/Carmen-Shannon/oxy-rt/engine/frame"
	"github.com/Carmen-Shannon/oxy-rt/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rt/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
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

// WithProfiler replaces the default profiler, for example to change its reporting interval.
//
// Parameters:
//   - p: the profiler to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window the engine takes input and its viewport size from.
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

// WithDisplay sets the display frames are presented on.
//
// Parameters:
//   - d: the display, usually created on the window's surface
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDisplay(d display.Display) EngineBuilderOption {
	return func(e *engine) {
		e.display = d
	}
}

// WithFrameContext sets the camera, scene and renderer bundle the engine steps.
//
// Parameters:
//   - fc: the frame context
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameContext(fc *frame.FrameContext) EngineBuilderOption {
	return func(e *engine) {
		e.frameContext = fc
	}
}

// WithSnapshotWriter enables snapshots (key P, or RequestSnapshot) through w.
//
// Parameters:
//   - w: the snapshot writer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSnapshotWriter(w snapshot.Writer) EngineBuilderOption {
	return func(e *engine) {
		e.snapshots = w
	}
}

// WithViewport sets the render size used when the engine has no window.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithViewport(width, height int) EngineBuilderOption {
	return func(e *engine) {
		e.viewportWidth = width
		e.viewportHeight = height
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}
