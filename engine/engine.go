package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/display"
	"github.com/Carmen-Shannon/oxy-rt/engine/frame"
	"github.com/Carmen-Shannon/oxy-rt/engine/profiler"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
)

// engine implements the Engine interface.
// Frames are produced synchronously on the thread that runs the window message loop.
type engine struct {
	window  window.Window
	display display.Display

	frameContext *frame.FrameContext
	input        *frame.InputTracker

	profiler         *profiler.Profiler
	profilingEnabled bool

	snapshots        snapshot.Writer
	snapshotPending  bool
	frameCallback    func(stats frame.FrameStats)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// viewport is used when there is no window to take the size from.
	viewportWidth  int
	viewportHeight int

	lastFrame time.Time

	closeOnce sync.Once
}

// Engine drives the interactive ray tracer: it collects window input, steps the frame context,
// presents the result and reports statistics.
type Engine interface {
	// Window returns the underlying window, or nil when running without one.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// FrameContext returns the camera, scene and renderer the engine steps each frame.
	//
	// Returns:
	//   - *frame.FrameContext: the frame context
	FrameContext() *frame.FrameContext

	// Input returns the tracker that turns window events into navigation input.
	// Without a window, callers feed it directly.
	//
	// Returns:
	//   - *frame.InputTracker: the input tracker
	Input() *frame.InputTracker

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetFrameCallback registers a function called after every frame with that frame's statistics.
	//
	// Parameters:
	//   - callback: the function to call, or nil to disable
	SetFrameCallback(callback func(stats frame.FrameStats))

	// RequestSnapshot saves the next frame through the snapshot writer. Ignored without a writer.
	RequestSnapshot()

	// RenderFrame produces one frame: input is consumed, the frame context is stepped at the current
	// viewport size and the image is presented when a display is attached.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - *renderer.PixelBuffer: the frame, valid until the next RenderFrame
	RenderFrame(deltaTime float32) *renderer.PixelBuffer

	// Run starts the window message loop and renders one frame per iteration.
	// Blocks until the window closes or Quit is called. Requires a window.
	Run()

	// Quit asks the message loop to stop after the current frame.
	Quit()

	// Close waits for pending snapshots, stops the snapshot writer and releases the display and window.
	//
	// Returns:
	//   - error: the joined errors of snapshot writes and window shutdown
	Close() error
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Without WithFrameContext the demo scene is used. When a window is supplied its input and resize
// events are wired to the input tracker and the display.
//
// Parameters:
//   - options: functional options for engine configuration (window, display, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		input:          frame.NewInputTracker(),
		profiler:       profiler.NewProfiler(),
		viewportWidth:  100,
		viewportHeight: 100,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.frameContext == nil {
		e.frameContext = frame.NewFrameContext()
	}

	if e.window != nil {
		e.bindWindow()
		if e.display != nil {
			e.display.Configure(e.window.Width(), e.window.Height())
		}
	}

	return e
}

// bindWindow routes window events to the input tracker, the display and engine shortcuts.
func (e *engine) bindWindow() {
	e.window.SetResizeCallback(func(width, height int) {
		if e.display != nil {
			e.display.Configure(width, height)
		}
	})
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyP {
			e.RequestSnapshot()
			return
		}
		e.input.OnKeyDown(keyCode)
	})
	e.window.SetKeyUpCallback(e.input.OnKeyUp)
	e.window.SetMouseDownCallback(func(button uint32) {
		e.input.OnMouseDown(button)
		if button == common.MouseButtonRight {
			e.window.SetCursorHidden(true)
		}
	})
	e.window.SetMouseUpCallback(func(button uint32) {
		e.input.OnMouseUp(button)
		if button == common.MouseButtonRight {
			e.window.SetCursorHidden(false)
		}
	})
	e.window.SetMouseMoveCallback(e.input.OnMouseMove)
	e.window.SetFocusCallback(func(focused bool) {
		if !focused {
			e.input.Reset()
			e.window.SetCursorHidden(false)
		}
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) FrameContext() *frame.FrameContext {
	return e.frameContext
}

func (e *engine) Input() *frame.InputTracker {
	return e.input
}

// viewport returns the size frames are rendered at.
func (e *engine) viewport() (int, int) {
	if e.window != nil {
		return e.window.Width(), e.window.Height()
	}
	return e.viewportWidth, e.viewportHeight
}

func (e *engine) RenderFrame(deltaTime float32) *renderer.PixelBuffer {
	width, height := e.viewport()
	buf := e.frameContext.Step(deltaTime, width, height, e.input.Consume())

	if e.display != nil {
		if err := e.display.Present(buf); err != nil {
			log.Printf("[Engine] present failed: %v", err)
		}
	}

	if e.snapshotPending {
		e.snapshotPending = false
		if e.snapshots != nil {
			e.snapshots.Save(buf)
		}
	}

	stats := e.frameContext.Stats()
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(stats)
	}
	if e.frameCallback != nil {
		e.frameCallback(stats)
	}
	return buf
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("[Engine] Run requires a window; use RenderFrame to drive frames without one")
		return
	}

	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.tick)
	e.window.ProcessMessages()
}

// tick renders one frame from the message loop and applies the frame rate cap.
// A panic inside the frame is logged and stops the loop instead of crashing the process.
func (e *engine) tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			e.Quit()
		}
	}()

	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	e.RenderFrame(dt)

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) Quit() {
	if e.window != nil {
		e.window.RequestClose()
	}
}

// Close releases everything the engine owns. Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Close() error {
	var errs []error
	e.closeOnce.Do(func() {
		if e.snapshots != nil {
			if err := e.snapshots.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		// The surface must go before the window it was created on.
		if e.display != nil {
			e.display.Release()
			e.display = nil
		}
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

// SetFrameCallback registers the function called after each frame.
func (e *engine) SetFrameCallback(callback func(stats frame.FrameStats)) {
	e.frameCallback = callback
}

func (e *engine) RequestSnapshot() {
	if e.snapshots == nil {
		log.Printf("[Engine] snapshot requested but no snapshot directory is configured")
		return
	}
	e.snapshotPending = true
}

// frameDuration converts a frame rate cap into the minimum frame duration; 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
