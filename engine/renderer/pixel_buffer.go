package renderer

import (
	"image"
	"image/color"
)

// PixelBuffer is a row-major RGB image, three bytes per pixel, with row 0 at the top.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer allocates a zeroed buffer of the given size.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - *PixelBuffer: the new buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At returns the opaque color of the pixel at (x, y), or the zero color outside the buffer.
func (p *PixelBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return color.RGBA{}
	}
	i := (x + y*p.Width) * 3
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 255}
}

// Set writes the RGB channels of c to the pixel at (x, y). Out of range writes are ignored.
func (p *PixelBuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	i := (x + y*p.Width) * 3
	p.Pix[i] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
}

// RGBA expands the buffer to tightly packed RGBA8 with opaque alpha, the layout expected by
// GPU texture uploads and image/png.
//
// Parameters:
//   - dst: optional destination reused when it has enough capacity
//
// Returns:
//   - []uint8: the RGBA8 pixels, Width*Height*4 bytes
func (p *PixelBuffer) RGBA(dst []uint8) []uint8 {
	n := p.Width * p.Height
	if cap(dst) < n*4 {
		dst = make([]uint8, n*4)
	}
	dst = dst[:n*4]
	for i := 0; i < n; i++ {
		dst[i*4] = p.Pix[i*3]
		dst[i*4+1] = p.Pix[i*3+1]
		dst[i*4+2] = p.Pix[i*3+2]
		dst[i*4+3] = 255
	}
	return dst
}

// Image returns a copy of the buffer as an *image.RGBA.
func (p *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	p.RGBA(img.Pix)
	return img
}

// Clone returns a deep copy of the buffer.
func (p *PixelBuffer) Clone() *PixelBuffer {
	c := &PixelBuffer{Width: p.Width, Height: p.Height, Pix: make([]uint8, len(p.Pix))}
	copy(c.Pix, p.Pix)
	return c
}
