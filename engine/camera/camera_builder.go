package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees, in (0, 180)
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance (must be > near)
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithUp sets the world up axis.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl32.Vec3{x, y, z}
	}
}

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithForward sets the camera's initial viewing direction. The direction is normalized.
//
// Parameters:
//   - x, y, z: direction components (must not all be zero)
//
// Returns:
//   - CameraBuilderOption: functional option to set the forward direction
func WithForward(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.forward = mgl32.Vec3{x, y, z}.Normalize()
	}
}

// WithViewport sets the initial viewport size in pixels.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - CameraBuilderOption: functional option to set the viewport size
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewportWidth = width
		c.viewportHeight = height
	}
}

// WithMoveSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: units per second
//
// Returns:
//   - CameraBuilderOption: functional option to set the move speed
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithRotationSpeed sets the multiplier applied to the scaled cursor delta.
//
// Parameters:
//   - speed: rotation multiplier
//
// Returns:
//   - CameraBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotationSpeed = speed
	}
}

// WithMouseSensitivity sets the radians per pixel of cursor motion.
//
// Parameters:
//   - sensitivity: multiplier for raw cursor deltas
//
// Returns:
//   - CameraBuilderOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}
