package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneCfg is the JSON form of a scene file.
//
//	{"spheres": [{"position": [0, 0, -5], "radius": 2, "albedo": [0.1, 0.3, 1, 0]}]}
type SceneCfg struct {
	Spheres []SphereCfg `json:"spheres"`
}

// SphereCfg is the JSON form of a sphere. Albedo defaults to white when omitted.
type SphereCfg struct {
	Position mgl32.Vec3  `json:"position"`
	Radius   float32     `json:"radius"`
	Albedo   *mgl32.Vec4 `json:"albedo,omitempty"`
}

// Build validates the config and constructs the runtime sphere.
func (sc SphereCfg) Build() (Sphere, error) {
	r := float64(sc.Radius)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return Sphere{}, fmt.Errorf("radius must be > 0, got %v", sc.Radius)
	}
	s := NewSphere(WithRadius(sc.Radius))
	s.Position = sc.Position
	if sc.Albedo != nil {
		s.Material.Albedo = *sc.Albedo
	}
	return s, nil
}

// LoadJSON decodes a scene description from r. Unknown fields are rejected.
//
// Parameters:
//   - r: the reader to decode from
//
// Returns:
//   - Scene: the decoded scene, spheres in file order
//   - error: an error if decoding or validation fails
func LoadJSON(r io.Reader) (Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg SceneCfg
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := NewScene()
	for i, sc := range cfg.Spheres {
		sp, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Add(sp)
	}
	return s, nil
}

// LoadFile reads a JSON scene description from path.
//
// Parameters:
//   - path: the scene file path
//
// Returns:
//   - Scene: the decoded scene
//   - error: an error if the file cannot be read or is invalid
func LoadFile(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene file: %w", err)
	}
	defer f.Close()

	s, err := LoadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}
