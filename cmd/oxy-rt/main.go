package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine"
	"github.com/Carmen-Shannon/oxy-rt/engine/display"
	"github.com/Carmen-Shannon/oxy-rt/engine/frame"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/Carmen-Shannon/oxy-rt/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
)

type options struct {
	width       int
	height      int
	title       string
	sceneFile   string
	profile     bool
	fpsCap      float64
	vsync       bool
	linear      bool
	snapshotDir string
	headless    bool
	frames      int
	orbitStep   int
	fallback    bool
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.width, "width", 1280, "window width, or the image width with -headless")
	flag.IntVar(&o.height, "height", 720, "window height, or the image height with -headless")
	flag.StringVar(&o.title, "title", "oxy-rt", "window title")
	flag.StringVar(&o.sceneFile, "scene", "", "JSON scene file (default: built-in demo scene)")
	flag.BoolVar(&o.profile, "profile", false, "log frame statistics once per second")
	flag.Float64Var(&o.fpsCap, "fps", 0, "frame rate cap, 0 = uncapped")
	flag.BoolVar(&o.vsync, "vsync", true, "synchronize presentation with the display refresh")
	flag.BoolVar(&o.linear, "linear", false, "use linear filtering when the frame is scaled to the window")
	flag.StringVar(&o.snapshotDir, "snapshots", "snapshots", "directory PNG snapshots are written to (key P)")
	flag.BoolVar(&o.headless, "headless", false, "render without a window and save the last frame")
	flag.IntVar(&o.frames, "frames", 1, "number of frames to render with -headless")
	flag.IntVar(&o.orbitStep, "orbit", 0, "horizontal cursor pixels per frame fed to the camera with -headless")
	flag.BoolVar(&o.fallback, "fallback-adapter", false, "force the software WebGPU adapter")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	sc := scene.NewDefaultScene()
	if opts.sceneFile != "" {
		loaded, err := scene.LoadFile(opts.sceneFile)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		sc = loaded
	}

	snapshots, err := snapshot.NewWriter(opts.snapshotDir)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	engineOpts := []engine.EngineBuilderOption{
		engine.WithProfiling(opts.profile),
		engine.WithRenderFrameLimit(opts.fpsCap),
		engine.WithSnapshotWriter(snapshots),
		engine.WithFrameContext(frame.NewFrameContext(frame.WithScene(sc))),
	}

	if opts.headless {
		if err := runHeadless(opts, engineOpts); err != nil {
			log.Fatalf("[Main] %v", err)
		}
		return
	}

	if err := runWindowed(opts, engineOpts); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}

// runHeadless renders opts.frames frames at a fixed 60 Hz step and saves the last one.
// With -orbit the look control is held and the cursor moves right every frame, turning the camera.
func runHeadless(opts options, engineOpts []engine.EngineBuilderOption) error {
	if opts.frames < 1 {
		return fmt.Errorf("-frames must be at least 1, got %d", opts.frames)
	}

	eng := engine.NewEngine(append(engineOpts, engine.WithViewport(opts.width, opts.height))...)

	input := eng.Input()
	if opts.orbitStep != 0 {
		input.OnMouseMove(0, 0)
		input.OnMouseDown(common.MouseButtonRight)
	}

	const dt = float32(1.0 / 60.0)
	for i := 0; i < opts.frames; i++ {
		if opts.orbitStep != 0 {
			input.OnMouseMove(int32((i+1)*opts.orbitStep), 0)
		}
		if i == opts.frames-1 {
			eng.RequestSnapshot()
		}
		eng.RenderFrame(dt)
	}

	stats := eng.FrameContext().Stats()
	log.Printf("[Main] rendered %d frames at %dx%d, camera at %v", stats.Frame, stats.Width, stats.Height, stats.CameraPosition)
	return eng.Close()
}

func runWindowed(opts options, engineOpts []engine.EngineBuilderOption) error {
	win := window.NewWindow(
		window.WithTitle(opts.title),
		window.WithSize(opts.width, opts.height),
	)

	presentMode := display.PresentModeVSync
	if !opts.vsync {
		presentMode = display.PresentModeUncapped
	}
	filter := display.FilterNearest
	if opts.linear {
		filter = display.FilterLinear
	}

	disp, err := display.NewDisplay(win.SurfaceDescriptor(),
		display.WithPresentMode(presentMode),
		display.WithFilter(filter),
		display.WithForceFallbackAdapter(opts.fallback),
	)
	if err != nil {
		_ = win.Close()
		return err
	}

	eng := engine.NewEngine(append(engineOpts,
		engine.WithWindow(win),
		engine.WithDisplay(disp),
	)...)

	fmt.Fprintln(os.Stderr, "Hold right mouse to look, WASD to move, Q/E down/up, P snapshot, Esc quit")
	eng.Run()
	return eng.Close()
}
