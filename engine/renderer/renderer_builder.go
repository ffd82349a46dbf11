package renderer

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithLightDirection sets the direction the light travels in. The direction is normalized.
//
// Parameters:
//   - x, y, z: direction components (must not all be zero)
//
// Returns:
//   - RendererBuilderOption: a function that applies the light direction to a renderer
func WithLightDirection(x, y, z float32) RendererBuilderOption {
	return func(r *renderer) {
		r.lightDirection = mgl32.Vec3{x, y, z}.Normalize()
	}
}

// WithBackground sets the color returned for rays that hit nothing, replacing the default black.
// Out-of-table pixels use it too. Alpha is forced opaque. Without this option a miss is always
// black, which is what the demo scene and the command line use.
//
// Parameters:
//   - c: the background color
//
// Returns:
//   - RendererBuilderOption: a function that applies the background to a renderer
func WithBackground(c color.RGBA) RendererBuilderOption {
	return func(r *renderer) {
		c.A = 255
		r.background = c
	}
}
