package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereDefaults(t *testing.T) {
	s := NewSphere()
	if s.Position != (mgl32.Vec3{}) {
		t.Errorf("expected sphere at origin, got %v", s.Position)
	}
	if s.Radius != 1 {
		t.Errorf("expected radius 1, got %v", s.Radius)
	}
	if s.Material.Albedo != (mgl32.Vec4{1, 1, 1, 0}) {
		t.Errorf("expected white albedo, got %v", s.Material.Albedo)
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if s.Len() != 2 {
		t.Fatalf("expected 2 spheres, got %d", s.Len())
	}

	blue, _ := s.Sphere(0)
	if blue.Position != (mgl32.Vec3{0, 0, -5}) || blue.Radius != 2 || blue.Material.Albedo != (mgl32.Vec4{0.1, 0.3, 1, 0}) {
		t.Errorf("unexpected first sphere %+v", blue)
	}
	magenta, _ := s.Sphere(1)
	if magenta.Position != (mgl32.Vec3{}) || magenta.Radius != 0.5 || magenta.Material.Albedo != (mgl32.Vec4{1, 0, 1, 0}) {
		t.Errorf("unexpected second sphere %+v", magenta)
	}
}

func TestSceneMutation(t *testing.T) {
	a := NewSphere(WithCenter(1, 0, 0))
	b := NewSphere(WithCenter(2, 0, 0))
	c := NewSphere(WithCenter(3, 0, 0))

	s := NewScene(WithSpheres(a, b))
	if i := s.Add(c); i != 2 {
		t.Fatalf("expected Add to return index 2, got %d", i)
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 2 || s.Spheres()[0] != b || s.Spheres()[1] != c {
		t.Fatalf("expected [b c] after removing the first sphere, got %+v", s.Spheres())
	}

	if err := s.SetSphere(1, a); err != nil {
		t.Fatalf("SetSphere: %v", err)
	}
	if got, _ := s.Sphere(1); got != a {
		t.Errorf("expected sphere 1 to be replaced, got %+v", got)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty scene after Clear, got %d spheres", s.Len())
	}
}

func TestSceneIndexOutOfRange(t *testing.T) {
	s := NewScene(WithSpheres(NewSphere()))

	if _, ok := s.Sphere(1); ok {
		t.Error("expected Sphere(1) to report out of range")
	}
	if _, ok := s.Sphere(-1); ok {
		t.Error("expected Sphere(-1) to report out of range")
	}
	if err := s.SetSphere(3, NewSphere()); err == nil {
		t.Error("expected SetSphere to fail for index 3")
	}
	if err := s.Remove(-1); err == nil {
		t.Error("expected Remove to fail for index -1")
	}
	if s.Len() != 1 {
		t.Errorf("failed mutations changed the scene: %d spheres", s.Len())
	}
}

func TestLoadJSON(t *testing.T) {
	input := `{
		"spheres": [
			{"position": [0, 0, -5], "radius": 2, "albedo": [0.1, 0.3, 1, 0]},
			{"position": [1, 2, 3], "radius": 0.5}
		]
	}`

	s, err := LoadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 spheres, got %d", s.Len())
	}

	first, _ := s.Sphere(0)
	if first.Position != (mgl32.Vec3{0, 0, -5}) || first.Radius != 2 || first.Material.Albedo != (mgl32.Vec4{0.1, 0.3, 1, 0}) {
		t.Errorf("unexpected first sphere %+v", first)
	}
	second, _ := s.Sphere(1)
	if second.Position != (mgl32.Vec3{1, 2, 3}) || second.Material.Albedo != DefaultMaterial().Albedo {
		t.Errorf("unexpected second sphere %+v", second)
	}
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"spheres": [`},
		{"unknown field", `{"spheres": [], "lights": []}`},
		{"zero radius", `{"spheres": [{"position": [0, 0, 0], "radius": 0}]}`},
		{"negative radius", `{"spheres": [{"position": [0, 0, 0], "radius": -1}]}`},
		{"non-array vector", `{"spheres": [{"position": "origin", "radius": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(`{"spheres": [{"position": [0, 1, 0], "radius": 3}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, _ := s.Sphere(0); got.Radius != 3 || got.Position != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("unexpected sphere %+v", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
