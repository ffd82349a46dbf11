package display

import (
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
)

// DisplayBuilderOption is a functional option applied to a display during construction via NewDisplay.
type DisplayBuilderOption func(*wgpuDisplay)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - DisplayBuilderOption: a function that applies the present mode option to a display
func WithPresentMode(mode PresentMode) DisplayBuilderOption {
	return func(d *wgpuDisplay) {
		d.presentMode = mode
	}
}

// WithFilter sets how the frame texture is sampled when it is stretched over the surface.
//
// Parameters:
//   - f: the Filter to use
//
// Returns:
//   - DisplayBuilderOption: a function that applies the filter option to a display
func WithFilter(f Filter) DisplayBuilderOption {
	return func(d *wgpuDisplay) {
		d.filter = f
	}
}

// WithForceFallbackAdapter requests the software fallback adapter, useful on machines without a usable GPU.
//
// Parameters:
//   - force: whether to force the fallback adapter
//
// Returns:
//   - DisplayBuilderOption: a function that applies the adapter option to a display
func WithForceFallbackAdapter(force bool) DisplayBuilderOption {
	return func(d *wgpuDisplay) {
		d.forceFallbackAdapter = force
	}
}

// WithClearColor sets the color shown around the frame before the first upload.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - DisplayBuilderOption: a function that applies the clear color to a display
func WithClearColor(c color.RGBA) DisplayBuilderOption {
	return func(d *wgpuDisplay) {
		d.clearColor = wgpu.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: 1,
		}
	}
}
