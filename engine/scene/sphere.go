package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes the surface of a sphere.
// Albedo is an RGBA base color; only RGB takes part in shading.
type Material struct {
	Albedo mgl32.Vec4
}

// DefaultMaterial returns a white material.
func DefaultMaterial() Material {
	return Material{Albedo: mgl32.Vec4{1, 1, 1, 0}}
}

// Sphere is a renderable sphere in world space.
type Sphere struct {
	Position mgl32.Vec3
	Radius   float32
	Material Material
}

// SphereOption is a functional option for configuring a Sphere created with NewSphere.
type SphereOption func(*Sphere)

// NewSphere creates a unit sphere at the origin with the default material and applies the given options.
//
// Parameters:
//   - options: optional functional options to configure the sphere
//
// Returns:
//   - Sphere: the configured sphere
func NewSphere(options ...SphereOption) Sphere {
	s := Sphere{
		Radius:   1,
		Material: DefaultMaterial(),
	}
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// WithCenter sets the sphere's world-space center.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - SphereOption: a function that sets the sphere's center
func WithCenter(x, y, z float32) SphereOption {
	return func(s *Sphere) {
		s.Position = mgl32.Vec3{x, y, z}
	}
}

// WithRadius sets the sphere's radius.
//
// Parameters:
//   - radius: the radius (must be > 0)
//
// Returns:
//   - SphereOption: a function that sets the sphere's radius
func WithRadius(radius float32) SphereOption {
	return func(s *Sphere) {
		s.Radius = radius
	}
}

// WithAlbedo sets the sphere material's albedo.
//
// Parameters:
//   - r, g, b, a: albedo channels, nominally in [0, 1]
//
// Returns:
//   - SphereOption: a function that sets the albedo
func WithAlbedo(r, g, b, a float32) SphereOption {
	return func(s *Sphere) {
		s.Material.Albedo = mgl32.Vec4{r, g, b, a}
	}
}
