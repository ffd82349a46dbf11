package frame

import (
	"github.com/Carmen-Shannon/oxy-rt/common"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// defaultKeyMap binds the navigation keys to camera directions.
var defaultKeyMap = map[uint32]camera.Direction{
	common.KeyW: camera.DirectionForward,
	common.KeyS: camera.DirectionBack,
	common.KeyA: camera.DirectionLeft,
	common.KeyD: camera.DirectionRight,
	common.KeyQ: camera.DirectionDown,
	common.KeyE: camera.DirectionUp,
}

// InputTracker accumulates raw window input between frames and turns it into camera navigation input.
// Its methods are meant to be used as window callbacks on the thread that drives frames.
type InputTracker struct {
	keyMap map[uint32]camera.Direction
	keys   camera.KeySet

	lookButton uint32
	looking    bool

	cursor     mgl32.Vec2
	lastCursor mgl32.Vec2
	hasCursor  bool
}

// NewInputTracker creates a tracker that maps W/S/A/D/Q/E to forward/back/left/right/down/up
// and uses the right mouse button as the look control.
//
// Returns:
//   - *InputTracker: the new tracker
func NewInputTracker() *InputTracker {
	return &InputTracker{
		keyMap:     defaultKeyMap,
		lookButton: common.MouseButtonRight,
	}
}

// OnKeyDown records a key press. Unbound keys are ignored.
func (t *InputTracker) OnKeyDown(keyCode uint32) {
	if dir, ok := t.keyMap[keyCode]; ok {
		t.keys = t.keys.With(dir)
	}
}

// OnKeyUp records a key release.
func (t *InputTracker) OnKeyUp(keyCode uint32) {
	if dir, ok := t.keyMap[keyCode]; ok {
		t.keys = t.keys.Without(dir)
	}
}

// OnMouseDown records a mouse button press.
func (t *InputTracker) OnMouseDown(button uint32) {
	if button == t.lookButton {
		t.looking = true
	}
}

// OnMouseUp records a mouse button release.
func (t *InputTracker) OnMouseUp(button uint32) {
	if button == t.lookButton {
		t.looking = false
	}
}

// OnMouseMove records the cursor position in window pixels.
func (t *InputTracker) OnMouseMove(x, y int32) {
	t.cursor = mgl32.Vec2{float32(x), float32(y)}
	if !t.hasCursor {
		t.lastCursor = t.cursor
		t.hasCursor = true
	}
}

// Looking reports whether the look control is held.
func (t *InputTracker) Looking() bool {
	return t.looking
}

// Consume returns the navigation input for one frame. The cursor delta covers the motion since the
// previous Consume and is reset even when the look control is released, so releasing and pressing
// it again never produces a jump.
//
// Returns:
//   - camera.NavigationInput: the frame's navigation input
func (t *InputTracker) Consume() camera.NavigationInput {
	delta := t.cursor.Sub(t.lastCursor)
	t.lastCursor = t.cursor
	return camera.NavigationInput{
		Look:        t.looking,
		CursorDelta: delta,
		Keys:        t.keys,
	}
}

// Reset releases every key and the look control, for example when the window loses focus.
func (t *InputTracker) Reset() {
	t.keys = 0
	t.looking = false
	t.lastCursor = t.cursor
}
