package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII), move forward
	KeyA     = 65  // A key (ASCII), move left
	KeyS     = 83  // S key (ASCII), move back
	KeyD     = 68  // D key (ASCII), move right
	KeyQ     = 81  // Q key (ASCII), move down
	KeyE     = 69  // E key (ASCII), move up
	KeyP     = 80  // P key (ASCII), save a snapshot
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Mouse button codes, matching GLFW's numbering.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)
