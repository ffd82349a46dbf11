package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	up mgl32.Vec3

	fov  float32 // degrees
	near float32
	far  float32

	viewportWidth  int
	viewportHeight int

	position mgl32.Vec3
	forward  mgl32.Vec3

	moveSpeed        float32
	rotationSpeed    float32
	mouseSensitivity float32

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	inverseViewMatrix       mgl32.Mat4
	inverseProjectionMatrix mgl32.Mat4

	// rayDirections holds one world-space unit direction per viewport pixel, indexed x + y*viewportWidth.
	rayDirections []mgl32.Vec3
}

// Camera defines the interface for the ray tracing camera.
// The camera owns its position and orientation, the view/projection matrices derived from them,
// and a table of per-pixel primary ray directions that is rebuilt whenever any of those change.
// A Camera is owned by a single frame loop and is not safe for concurrent use.
type Camera interface {
	// Update applies one frame of navigation input. Translation uses at most one held direction,
	// rotation uses the cursor delta, and neither happens unless input.Look is set.
	// When the camera moved, the matrices and ray directions are recomputed.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//   - input: the frame's navigation input
	//
	// Returns:
	//   - bool: true if the camera moved or rotated
	Update(deltaTime float32, input NavigationInput) bool

	// Resize sets the viewport size in pixels. Identical dimensions are a no-op;
	// otherwise the matrices and ray directions are recomputed.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Resize(width, height int)

	// Recalculate recomputes the view matrix, the projection matrix and the ray directions, in that order.
	// Panics if either matrix cannot be inverted.
	Recalculate()

	// Position returns the camera's world-space position.
	Position() mgl32.Vec3

	// Forward returns the camera's unit forward direction.
	Forward() mgl32.Vec3

	// Up returns the world up axis used for look-at and vertical movement.
	Up() mgl32.Vec3

	// Fov returns the vertical field of view in degrees.
	Fov() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewportWidth returns the viewport width in pixels.
	ViewportWidth() int

	// ViewportHeight returns the viewport height in pixels.
	ViewportHeight() int

	// ViewMatrix returns the world to camera space matrix (column-major).
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the camera to clip space matrix (column-major).
	ProjectionMatrix() mgl32.Mat4

	// InverseViewMatrix returns the inverse of the view matrix.
	InverseViewMatrix() mgl32.Mat4

	// InverseProjectionMatrix returns the inverse of the projection matrix.
	InverseProjectionMatrix() mgl32.Mat4

	// RayDirections returns the per-pixel ray direction table, row-major with index x + y*ViewportWidth().
	// The slice is empty until the first recompute and is reused by later recomputes; callers must not
	// keep it across frames or modify it.
	//
	// Returns:
	//   - []mgl32.Vec3: the ray direction table
	RayDirections() []mgl32.Vec3

	// RayDirection returns the ray direction for the pixel (x, y) of the current table.
	//
	// Parameters:
	//   - x: pixel column
	//   - y: pixel row in ray table order (0 = bottom)
	//
	// Returns:
	//   - mgl32.Vec3: the world-space unit direction
	//   - bool: false if (x, y) lies outside the table
	RayDirection(x, y int) (mgl32.Vec3, bool)

	// SetPosition moves the camera and recomputes its derived state.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)

	// SetForward re-orients the camera and recomputes its derived state. The direction is normalized.
	//
	// Parameters:
	//   - forward: the new forward direction (must be non-zero)
	SetForward(forward mgl32.Vec3)

	// SetFov sets the vertical field of view in degrees and recomputes the derived state.
	//
	// Parameters:
	//   - fov: field of view in degrees, in (0, 180)
	SetFov(fov float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default settings: 45° vertical field of view, clip planes
// at 0.1 and 100, a 100x100 viewport, positioned at (0, 0, 6) looking down -Z.
// The matrices are identity and the ray direction table is empty until the first Recalculate,
// Resize to a different size, or Update that moves the camera.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		up:                      mgl32.Vec3{0, 1, 0},
		fov:                     45.0,
		near:                    0.1,
		far:                     100.0,
		viewportWidth:           100,
		viewportHeight:          100,
		position:                mgl32.Vec3{0, 0, 6},
		forward:                 mgl32.Vec3{0, 0, -1},
		moveSpeed:               5.0,
		rotationSpeed:           1.0,
		mouseSensitivity:        0.002,
		viewMatrix:              mgl32.Ident4(),
		projectionMatrix:        mgl32.Ident4(),
		inverseViewMatrix:       mgl32.Ident4(),
		inverseProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Update(deltaTime float32, input NavigationInput) bool {
	if !input.Look {
		return false
	}

	moved := false

	// Both translation and pitch use the right axis of the pre-rotation forward direction.
	rightDirection := c.forward.Cross(c.up)

	if dir, ok := input.Keys.Primary(); ok {
		step := c.moveSpeed * deltaTime
		switch dir {
		case DirectionForward:
			c.position = c.position.Add(c.forward.Mul(step))
		case DirectionBack:
			c.position = c.position.Sub(c.forward.Mul(step))
		case DirectionLeft:
			c.position = c.position.Sub(rightDirection.Mul(step))
		case DirectionRight:
			c.position = c.position.Add(rightDirection.Mul(step))
		case DirectionDown:
			c.position = c.position.Sub(c.up.Mul(step))
		case DirectionUp:
			c.position = c.position.Add(c.up.Mul(step))
		}
		moved = true
	}

	delta := input.CursorDelta.Mul(c.mouseSensitivity)
	if delta != (mgl32.Vec2{}) {
		pitchDelta := delta.Y() * c.rotationSpeed
		yawDelta := delta.X() * c.rotationSpeed

		// Looking straight up or down leaves no right axis to pitch around.
		pitchQuat := mgl32.QuatIdent()
		if l := rightDirection.Len(); l > 1e-6 {
			pitchQuat = mgl32.QuatRotate(-pitchDelta, rightDirection.Mul(1/l))
		}
		yawQuat := mgl32.QuatRotate(-yawDelta, c.up)
		rotation := pitchQuat.Mul(yawQuat).Normalize()

		c.forward = rotation.Rotate(c.forward).Normalize()
		moved = true
	}

	if moved {
		c.Recalculate()
	}
	return moved
}

func (c *cameraImpl) Resize(width, height int) {
	if c.viewportWidth == width && c.viewportHeight == height {
		return
	}
	c.viewportWidth = width
	c.viewportHeight = height
	c.Recalculate()
}

func (c *cameraImpl) Recalculate() {
	c.recalculateView()
	c.recalculateProjection()
	c.recalculateRayDirections()
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	return c.forward
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) ViewportWidth() int {
	return c.viewportWidth
}

func (c *cameraImpl) ViewportHeight() int {
	return c.viewportHeight
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) InverseViewMatrix() mgl32.Mat4 {
	return c.inverseViewMatrix
}

func (c *cameraImpl) InverseProjectionMatrix() mgl32.Mat4 {
	return c.inverseProjectionMatrix
}

func (c *cameraImpl) RayDirections() []mgl32.Vec3 {
	return c.rayDirections
}

func (c *cameraImpl) RayDirection(x, y int) (mgl32.Vec3, bool) {
	if x < 0 || y < 0 || x >= c.viewportWidth || y >= c.viewportHeight {
		return mgl32.Vec3{}, false
	}
	i := x + y*c.viewportWidth
	if i >= len(c.rayDirections) {
		return mgl32.Vec3{}, false
	}
	return c.rayDirections[i], true
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.Recalculate()
}

func (c *cameraImpl) SetForward(forward mgl32.Vec3) {
	c.forward = forward.Normalize()
	c.Recalculate()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
	c.Recalculate()
}

// recalculateView rebuilds the look-at view matrix and its inverse.
// Panics if the view matrix is singular, which only happens for non-finite camera state.
func (c *cameraImpl) recalculateView() {
	c.viewMatrix = mgl32.LookAtV(c.position, c.position.Add(c.forward), c.up)
	inv, ok := invert(c.viewMatrix)
	if !ok {
		panic(fmt.Sprintf("camera: view matrix is not invertible (position %v, forward %v)", c.position, c.forward))
	}
	c.inverseViewMatrix = inv
}

// recalculateProjection rebuilds the perspective projection and its inverse.
// A zero-sized viewport is treated as one pixel wide/high so the projection stays invertible.
// Panics if the projection is singular, i.e. fov/near/far are out of range.
func (c *cameraImpl) recalculateProjection() {
	aspect := float32(max(c.viewportWidth, 1)) / float32(max(c.viewportHeight, 1))
	c.projectionMatrix = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
	inv, ok := invert(c.projectionMatrix)
	if !ok {
		panic(fmt.Sprintf("camera: projection matrix is not invertible (fov %v°, near %v, far %v, viewport %dx%d)",
			c.fov, c.near, c.far, c.viewportWidth, c.viewportHeight))
	}
	c.inverseProjectionMatrix = inv
}

// invert returns the inverse of m. Mat4.Inv yields the zero matrix for a singular input,
// so singularity is detected from the determinant and the result.
func invert(m mgl32.Mat4) (mgl32.Mat4, bool) {
	det := float64(m.Det())
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return mgl32.Mat4{}, false
	}
	inv := m.Inv()
	if inv == (mgl32.Mat4{}) {
		return mgl32.Mat4{}, false
	}
	return inv, true
}

// recalculateRayDirections unprojects every pixel's NDC coordinate through the inverse projection
// and inverse view matrices. Pixel (x, y) maps to NDC (x/width*2-1, y/height*2-1) with no half-pixel offset.
func (c *cameraImpl) recalculateRayDirections() {
	width := max(c.viewportWidth, 0)
	height := max(c.viewportHeight, 0)
	n := width * height
	if cap(c.rayDirections) >= n {
		c.rayDirections = c.rayDirections[:n]
	} else {
		c.rayDirections = make([]mgl32.Vec3, n)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndcX := float32(x)/float32(width)*2 - 1
			ndcY := float32(y)/float32(height)*2 - 1

			target := c.inverseProjectionMatrix.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
			viewDir := target.Vec3().Mul(1 / target.W()).Normalize()

			// w = 0: directions rotate with the camera but do not translate.
			worldDir := c.inverseViewMatrix.Mul4x1(viewDir.Vec4(0)).Vec3()
			c.rayDirections[x+y*width] = worldDir.Normalize()
		}
	}
}
