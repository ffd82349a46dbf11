package display

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// blitShaderSource draws a texture over the whole surface with a single fullscreen triangle.
//
//go:embed assets/blit.wgsl
var blitShaderSource string

// PresentMode controls how presented frames are synchronized with the display.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// Filter selects how the frame texture is sampled when the surface and frame sizes differ.
type Filter int

const (
	// FilterNearest keeps hard pixel edges. This is the default.
	FilterNearest Filter = iota

	// FilterLinear blends neighbouring pixels.
	FilterLinear
)

// Display uploads CPU-rendered frames to a GPU surface and presents them.
// Methods must be called from the thread that owns the window.
type Display interface {
	// Configure (re)configures the surface for a new size. Zero sizes, as reported for minimized
	// windows, leave the surface unconfigured and Present becomes a no-op until the next Configure.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	Configure(width, height int)

	// Present uploads buf into the frame texture, recreating the texture when the frame size
	// changed, and draws it over the whole surface.
	//
	// Parameters:
	//   - buf: the frame to show; row 0 is drawn at the top
	//
	// Returns:
	//   - error: an error if the surface texture cannot be acquired or the GPU commands fail
	Present(buf *renderer.PixelBuffer) error

	// SetPresentMode changes the present mode; it takes effect on the next Configure.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Release frees every GPU resource owned by the display.
	Release()
}

// presentModeFor maps a PresentMode onto the wgpu present mode.
func presentModeFor(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeVSync:
		return wgpu.PresentModeFifo
	case PresentModeUncapped:
		fallthrough
	default:
		return wgpu.PresentModeImmediate
	}
}

// frameTextureFormat picks the frame texture format for a surface format. Rendered bytes are
// display-ready, so an sRGB surface gets an sRGB texture and the decode/encode pair cancels out.
func frameTextureFormat(surfaceFormat wgpu.TextureFormat) wgpu.TextureFormat {
	switch surfaceFormat {
	case wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb:
		return wgpu.TextureFormatRGBA8UnormSrgb
	default:
		return wgpu.TextureFormatRGBA8Unorm
	}
}

// filterModeFor maps a Filter onto the wgpu sampler filter.
func filterModeFor(f Filter) wgpu.FilterMode {
	if f == FilterLinear {
		return wgpu.FilterModeLinear
	}
	return wgpu.FilterModeNearest
}
