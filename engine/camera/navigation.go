package camera

import "github.com/go-gl/mathgl/mgl32"

// Direction identifies one of the six discrete translation directions a camera can move in.
type Direction uint8

const (
	// DirectionForward moves along the camera's forward direction.
	DirectionForward Direction = iota
	// DirectionBack moves against the camera's forward direction.
	DirectionBack
	// DirectionLeft moves against the camera's right direction.
	DirectionLeft
	// DirectionRight moves along the camera's right direction.
	DirectionRight
	// DirectionDown moves against the world up axis.
	DirectionDown
	// DirectionUp moves along the world up axis.
	DirectionUp
)

// directionPriority is the order in which held keys are considered; only the first one held moves the camera.
var directionPriority = [...]Direction{
	DirectionForward,
	DirectionBack,
	DirectionLeft,
	DirectionRight,
	DirectionDown,
	DirectionUp,
}

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBack:
		return "back"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	}
	return "unknown"
}

// KeySet is a bit set of currently held Directions.
type KeySet uint8

// NewKeySet builds a KeySet holding the given directions.
//
// Parameters:
//   - dirs: the held directions
//
// Returns:
//   - KeySet: the set containing every direction in dirs
func NewKeySet(dirs ...Direction) KeySet {
	var k KeySet
	for _, d := range dirs {
		k = k.With(d)
	}
	return k
}

// With returns a copy of the set with d held.
func (k KeySet) With(d Direction) KeySet {
	return k | 1<<d
}

// Without returns a copy of the set with d released.
func (k KeySet) Without(d Direction) KeySet {
	return k &^ (1 << d)
}

// Has reports whether d is held.
func (k KeySet) Has(d Direction) bool {
	return k&(1<<d) != 0
}

// Primary returns the single direction that will be applied this frame.
// When several directions are held the priority is forward, back, left, right, down, up.
//
// Returns:
//   - Direction: the highest priority held direction
//   - bool: false if no direction is held
func (k KeySet) Primary() (Direction, bool) {
	for _, d := range directionPriority {
		if k.Has(d) {
			return d, true
		}
	}
	return 0, false
}

// NavigationInput is the per-frame input consumed by Camera.Update.
type NavigationInput struct {
	// Look is true only while the look control is held. Without it the camera neither moves nor rotates.
	Look bool

	// CursorDelta is the raw cursor motion in pixels since the previous frame.
	CursorDelta mgl32.Vec2

	// Keys is the set of held translation directions.
	Keys KeySet
}
