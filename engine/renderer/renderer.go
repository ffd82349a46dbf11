package renderer

import (
	"image/color"
	"math"

	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	// lightDirection is the unit direction the light travels in.
	lightDirection mgl32.Vec3
	background     color.RGBA

	// buffer is reused between frames of the same size.
	buffer *PixelBuffer
}

// Renderer traces one primary ray per pixel against a Scene and shades the nearest hit
// with a single directional light.
//
// A Renderer is owned by a single frame loop and is not safe for concurrent use.
type Renderer interface {
	// Render produces the image for the camera's current viewport. Zero viewport dimensions are
	// clamped to 1. Output row 0 is the top of the image, which is the last row of the camera's
	// ray table. Pixels whose index falls outside the ray table are background.
	//
	// The returned buffer is owned by the renderer and is overwritten by the next Render call;
	// use PixelBuffer.Clone to keep it.
	//
	// Parameters:
	//   - s: the scene to trace against
	//   - c: the camera providing the ray origin and per-pixel directions
	//
	// Returns:
	//   - *PixelBuffer: the rendered image
	Render(s scene.Scene, c camera.Camera) *PixelBuffer

	// TraceRay shades a single ray: the nearest sphere in front of the origin is lit by the
	// directional light, a miss returns the background color.
	//
	// Parameters:
	//   - s: the scene to trace against
	//   - r: the ray
	//
	// Returns:
	//   - color.RGBA: the opaque shaded color
	TraceRay(s scene.Scene, r Ray) color.RGBA

	// LightDirection returns the unit direction the light travels in.
	LightDirection() mgl32.Vec3
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer. The light defaults to normalize(-1, -1, -1) and the
// background to opaque black.
//
// Parameters:
//   - options: optional functional options to configure the renderer
//
// Returns:
//   - Renderer: the new renderer
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &renderer{
		lightDirection: mgl32.Vec3{-1, -1, -1}.Normalize(),
		background:     color.RGBA{A: 255},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Render(s scene.Scene, c camera.Camera) *PixelBuffer {
	viewportWidth := c.ViewportWidth()
	width := max(viewportWidth, 1)
	height := max(c.ViewportHeight(), 1)

	if r.buffer == nil || r.buffer.Width != width || r.buffer.Height != height {
		r.buffer = NewPixelBuffer(width, height)
	}

	directions := c.RayDirections()
	ray := Ray{Origin: c.Position()}

	row := 0
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			idx := x + y*viewportWidth
			if idx < 0 || idx >= len(directions) {
				r.buffer.Set(x, row, r.background)
				continue
			}
			ray.Direction = directions[idx]
			r.buffer.Set(x, row, r.TraceRay(s, ray))
		}
		row++
	}
	return r.buffer
}

func (r *renderer) TraceRay(s scene.Scene, ray Ray) color.RGBA {
	spheres := s.Spheres()

	closest := -1
	closestT := float32(math.Inf(1))
	for i := range spheres {
		t, ok := Intersect(spheres[i], ray)
		if !ok {
			continue
		}
		if t < closestT {
			closestT = t
			closest = i
		}
	}

	if closest < 0 {
		return r.background
	}

	sp := spheres[closest]
	// Shading happens in the hit sphere's local frame.
	hit := ray.Origin.Sub(sp.Position).Add(ray.Direction.Mul(closestT))
	normal := hit.Normalize()
	intensity := max(normal.Dot(r.lightDirection.Mul(-1)), 0)
	albedo := sp.Material.Albedo.Mul(intensity)

	return color.RGBA{
		R: common.Float32ToByte(albedo.X()),
		G: common.Float32ToByte(albedo.Y()),
		B: common.Float32ToByte(albedo.Z()),
		A: 255,
	}
}

func (r *renderer) LightDirection() mgl32.Vec3 {
	return r.lightDirection
}

// Intersect returns the distance along r to the near intersection with sp.
// Spheres the ray misses, and spheres whose near intersection lies behind the origin, are
// reported as no hit.
//
// Parameters:
//   - sp: the sphere
//   - r: the ray
//
// Returns:
//   - float32: the hit distance t, in units of the ray direction's length
//   - bool: true if the sphere was hit in front of the origin
func Intersect(sp scene.Sphere, r Ray) (float32, bool) {
	// |o + d*t|^2 = radius^2 with o relative to the sphere center.
	origin := r.Origin.Sub(sp.Position)

	a := r.Direction.Dot(r.Direction)
	b := 2 * origin.Dot(r.Direction)
	c := origin.Dot(origin) - sp.Radius*sp.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		return 0, false
	}
	return t, true
}
