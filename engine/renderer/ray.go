package renderer

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line from Origin along Direction. Direction is normally unit length
// but Intersect does not require it.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
