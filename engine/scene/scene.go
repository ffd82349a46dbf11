package scene

import "fmt"

// Scene is the ordered list of spheres the renderer traces against.
// Order matters: when two spheres are hit at exactly the same distance the earlier one wins.
// A Scene is owned by a single frame loop and is not safe for concurrent use.
type Scene interface {
	// Spheres returns the scene's spheres in order. The returned slice aliases the scene's storage;
	// callers must not modify it or keep it across mutations.
	//
	// Returns:
	//   - []Sphere: the ordered sphere list
	Spheres() []Sphere

	// Len returns the number of spheres in the scene.
	Len() int

	// Add appends a sphere to the end of the list.
	//
	// Parameters:
	//   - s: the sphere to add
	//
	// Returns:
	//   - int: the index of the new sphere
	Add(s Sphere) int

	// Sphere returns the sphere at index i.
	//
	// Parameters:
	//   - i: the sphere index
	//
	// Returns:
	//   - Sphere: the sphere at i
	//   - bool: false if i is out of range
	Sphere(i int) (Sphere, bool)

	// SetSphere replaces the sphere at index i.
	//
	// Parameters:
	//   - i: the sphere index
	//   - s: the replacement sphere
	//
	// Returns:
	//   - error: an error if i is out of range
	SetSphere(i int, s Sphere) error

	// Remove deletes the sphere at index i, preserving the order of the remaining spheres.
	//
	// Parameters:
	//   - i: the sphere index
	//
	// Returns:
	//   - error: an error if i is out of range
	Remove(i int) error

	// Clear removes every sphere from the scene.
	Clear()
}

type scene struct {
	spheres []Sphere
}

var _ Scene = &scene{}

// NewScene creates an empty Scene and applies the given options.
//
// Parameters:
//   - options: optional functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Spheres() []Sphere {
	return s.spheres
}

func (s *scene) Len() int {
	return len(s.spheres)
}

func (s *scene) Add(sp Sphere) int {
	s.spheres = append(s.spheres, sp)
	return len(s.spheres) - 1
}

func (s *scene) Sphere(i int) (Sphere, bool) {
	if i < 0 || i >= len(s.spheres) {
		return Sphere{}, false
	}
	return s.spheres[i], true
}

func (s *scene) SetSphere(i int, sp Sphere) error {
	if i < 0 || i >= len(s.spheres) {
		return fmt.Errorf("sphere index %d out of range [0, %d)", i, len(s.spheres))
	}
	s.spheres[i] = sp
	return nil
}

func (s *scene) Remove(i int) error {
	if i < 0 || i >= len(s.spheres) {
		return fmt.Errorf("sphere index %d out of range [0, %d)", i, len(s.spheres))
	}
	s.spheres = append(s.spheres[:i], s.spheres[i+1:]...)
	return nil
}

func (s *scene) Clear() {
	s.spheres = s.spheres[:0]
}
