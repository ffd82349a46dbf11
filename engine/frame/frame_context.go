package frame

import (
	"time"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameStats describes the most recent frame produced by a FrameContext.
type FrameStats struct {
	// Frame is the number of frames stepped so far, starting at 1.
	Frame uint64

	// Moved reports whether navigation input moved or rotated the camera.
	Moved bool

	// DeltaTime is the elapsed time passed to Step.
	DeltaTime time.Duration

	// RenderTime is the wall time Step spent updating and rendering.
	RenderTime time.Duration

	// CameraPosition is the camera position after the update.
	CameraPosition mgl32.Vec3

	// Width and Height are the dimensions of the produced image.
	Width  int
	Height int
}

// FrameContext bundles the state one frame loop owns: the camera, the scene and the renderer.
// It is passed explicitly to whoever drives frames and is not safe for concurrent use.
type FrameContext struct {
	Camera   camera.Camera
	Scene    scene.Scene
	Renderer renderer.Renderer

	stats FrameStats
}

// NewFrameContext creates a FrameContext with a default camera, the demo scene and a default renderer,
// then applies the options. The camera's derived state is computed once before returning.
//
// Parameters:
//   - options: optional functional options to configure the context
//
// Returns:
//   - *FrameContext: the ready to step context
func NewFrameContext(options ...FrameContextOption) *FrameContext {
	fc := &FrameContext{}
	for _, opt := range options {
		opt(fc)
	}
	if fc.Camera == nil {
		fc.Camera = camera.NewCamera()
	}
	if fc.Scene == nil {
		fc.Scene = scene.NewDefaultScene()
	}
	if fc.Renderer == nil {
		fc.Renderer = renderer.NewRenderer()
	}
	fc.Camera.Recalculate()
	return fc
}

// Step runs one frame: the camera applies the input, is resized to the viewport, and the scene is rendered.
//
// Parameters:
//   - deltaTime: seconds since the previous frame
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//   - input: the frame's navigation input
//
// Returns:
//   - *renderer.PixelBuffer: the rendered image, owned by the renderer until the next Step
func (fc *FrameContext) Step(deltaTime float32, width, height int, input camera.NavigationInput) *renderer.PixelBuffer {
	start := time.Now()

	moved := fc.Camera.Update(deltaTime, input)
	fc.Camera.Resize(width, height)
	buf := fc.Renderer.Render(fc.Scene, fc.Camera)

	fc.stats = FrameStats{
		Frame:          fc.stats.Frame + 1,
		Moved:          moved,
		DeltaTime:      time.Duration(float64(deltaTime) * float64(time.Second)),
		RenderTime:     time.Since(start),
		CameraPosition: fc.Camera.Position(),
		Width:          buf.Width,
		Height:         buf.Height,
	}
	return buf
}

// Stats returns the statistics of the most recent Step.
func (fc *FrameContext) Stats() FrameStats {
	return fc.stats
}
