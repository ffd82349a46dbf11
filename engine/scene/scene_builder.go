package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithSpheres appends initial spheres to the scene in the given order.
//
// Parameters:
//   - spheres: the spheres to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSpheres(spheres ...Sphere) SceneBuilderOption {
	return func(s *scene) {
		s.spheres = append(s.spheres, spheres...)
	}
}

// NewDefaultScene creates the demo scene: a large blue sphere behind a small magenta one at the origin.
//
// Returns:
//   - Scene: the demo scene
func NewDefaultScene() Scene {
	return NewScene(WithSpheres(
		NewSphere(WithCenter(0, 0, -5), WithRadius(2), WithAlbedo(0.1, 0.3, 1, 0)),
		NewSphere(WithRadius(0.5), WithAlbedo(1, 0, 1, 0)),
	))
}
