package frame

import (
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

// FrameContextOption is a functional option for configuring a FrameContext.
type FrameContextOption func(*FrameContext)

// WithCamera sets the camera the context navigates and renders from.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - FrameContextOption: option function to apply
func WithCamera(c camera.Camera) FrameContextOption {
	return func(fc *FrameContext) {
		fc.Camera = c
	}
}

// WithScene sets the scene the context renders.
//
// Parameters:
//   - s: the scene
//
// Returns:
//   - FrameContextOption: option function to apply
func WithScene(s scene.Scene) FrameContextOption {
	return func(fc *FrameContext) {
		fc.Scene = s
	}
}

// WithRenderer sets the renderer used to produce frames.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - FrameContextOption: option function to apply
func WithRenderer(r renderer.Renderer) FrameContextOption {
	return func(fc *FrameContext) {
		fc.Renderer = r
	}
}
