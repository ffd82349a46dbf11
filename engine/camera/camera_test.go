package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func approxVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > float64(eps) {
			return false
		}
	}
	return true
}

func approxMat4(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > float64(eps) {
			return false
		}
	}
	return true
}

func newTestCamera(t *testing.T, options ...CameraBuilderOption) Camera {
	t.Helper()
	c := NewCamera(options...)
	c.Recalculate()
	return c
}

func TestCameraRayTableEmptyUntilFirstRecompute(t *testing.T) {
	c := NewCamera()
	if n := len(c.RayDirections()); n != 0 {
		t.Fatalf("expected empty ray table before the first recompute, got %d entries", n)
	}
	if _, ok := c.RayDirection(0, 0); ok {
		t.Error("RayDirection should report false before the first recompute")
	}

	c.Recalculate()
	if n := len(c.RayDirections()); n != 100*100 {
		t.Fatalf("expected %d ray directions, got %d", 100*100, n)
	}
}

func TestCameraCenterRayPointsAlongForward(t *testing.T) {
	c := newTestCamera(t)

	dir, ok := c.RayDirection(50, 50)
	if !ok {
		t.Fatal("center pixel is outside the ray table")
	}
	expected := mgl32.Vec3{0, 0, -1}
	if !approxVec3(dir, expected, tolerance) {
		t.Errorf("expected center ray %v, got %v", expected, dir)
	}
}

func TestCameraRayDirectionsAreUnitLength(t *testing.T) {
	c := newTestCamera(t, WithViewport(32, 24), WithForward(0.3, -0.2, -1))

	for i, dir := range c.RayDirections() {
		if l := dir.Len(); math.Abs(float64(l-1)) > tolerance {
			t.Fatalf("ray %d has length %f, expected 1", i, l)
		}
	}
}

func TestCameraRayTableOrientation(t *testing.T) {
	c := newTestCamera(t, WithViewport(64, 64))

	// y = 0 is the bottom row of the ray table, x = 0 the left column.
	bottomLeft, _ := c.RayDirection(0, 0)
	if bottomLeft.X() >= 0 || bottomLeft.Y() >= 0 || bottomLeft.Z() >= 0 {
		t.Errorf("expected bottom-left ray to point left, down and forward, got %v", bottomLeft)
	}
	topRight, _ := c.RayDirection(63, 63)
	if topRight.X() <= 0 || topRight.Y() <= 0 || topRight.Z() >= 0 {
		t.Errorf("expected top-right ray to point right, up and forward, got %v", topRight)
	}

	// The vertical field of view spans the edge of NDC: pixel row 0 sits exactly on it.
	halfFov := float64(mgl32.DegToRad(45)) / 2
	edge, _ := c.RayDirection(32, 0)
	angle := math.Atan2(float64(-edge.Y()), float64(-edge.Z()))
	if math.Abs(angle-halfFov) > 1e-3 {
		t.Errorf("expected bottom edge ray at %f rad below the axis, got %f", halfFov, angle)
	}
}

func TestCameraRayDirectionsIgnoreTranslation(t *testing.T) {
	a := newTestCamera(t, WithViewport(16, 16))
	b := newTestCamera(t, WithViewport(16, 16), WithPosition(40, -3, 12))

	for i := range a.RayDirections() {
		if !approxVec3(a.RayDirections()[i], b.RayDirections()[i], tolerance) {
			t.Fatalf("ray %d differs between positions: %v vs %v", i, a.RayDirections()[i], b.RayDirections()[i])
		}
	}
}

func TestCameraResize(t *testing.T) {
	c := newTestCamera(t)

	c.Resize(64, 48)
	if c.ViewportWidth() != 64 || c.ViewportHeight() != 48 {
		t.Fatalf("expected viewport 64x48, got %dx%d", c.ViewportWidth(), c.ViewportHeight())
	}
	if n := len(c.RayDirections()); n != 64*48 {
		t.Fatalf("expected %d ray directions, got %d", 64*48, n)
	}

	// Aspect ratio widens the horizontal extent only.
	left, _ := c.RayDirection(0, 24)
	bottom, _ := c.RayDirection(32, 0)
	if math.Abs(float64(left.X())) <= math.Abs(float64(bottom.Y())) {
		t.Errorf("expected wider horizontal than vertical extent, got left %v bottom %v", left, bottom)
	}
}

func TestCameraResizeSameSizeIsNoop(t *testing.T) {
	c := newTestCamera(t)
	c.Resize(80, 60)

	before := make([]mgl32.Vec3, len(c.RayDirections()))
	copy(before, c.RayDirections())
	view := c.ViewMatrix()

	c.Resize(80, 60)

	after := c.RayDirections()
	if len(after) != len(before) {
		t.Fatalf("ray table length changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("ray %d changed from %v to %v", i, before[i], after[i])
		}
	}
	if c.ViewMatrix() != view {
		t.Error("view matrix changed on identical resize")
	}
}

func TestCameraResizeToZero(t *testing.T) {
	c := newTestCamera(t)

	c.Resize(0, 0)
	if n := len(c.RayDirections()); n != 0 {
		t.Errorf("expected empty ray table for a 0x0 viewport, got %d", n)
	}

	// The projection is built for a 1x1 viewport so it stays invertible.
	identity := c.ProjectionMatrix().Mul4(c.InverseProjectionMatrix())
	if !approxMat4(identity, mgl32.Ident4(), tolerance) {
		t.Errorf("projection * inverse is not identity: %v", identity)
	}
}

func TestCameraMatricesAreConsistent(t *testing.T) {
	c := newTestCamera(t, WithPosition(1, 2, 3), WithForward(-1, 0.5, -2), WithViewport(120, 80))

	if m := c.ViewMatrix().Mul4(c.InverseViewMatrix()); !approxMat4(m, mgl32.Ident4(), tolerance) {
		t.Errorf("view * inverse is not identity: %v", m)
	}
	if m := c.ProjectionMatrix().Mul4(c.InverseProjectionMatrix()); !approxMat4(m, mgl32.Ident4(), tolerance) {
		t.Errorf("projection * inverse is not identity: %v", m)
	}

	// The view matrix maps the camera position to the origin and the forward direction to -Z.
	origin := c.ViewMatrix().Mul4x1(c.Position().Vec4(1)).Vec3()
	if !approxVec3(origin, mgl32.Vec3{}, tolerance) {
		t.Errorf("expected camera position at view-space origin, got %v", origin)
	}
	fwd := c.ViewMatrix().Mul4x1(c.Forward().Vec4(0)).Vec3()
	if !approxVec3(fwd, mgl32.Vec3{0, 0, -1}, tolerance) {
		t.Errorf("expected forward to map to -Z, got %v", fwd)
	}
}

func TestCameraUpdateWithoutLookDoesNothing(t *testing.T) {
	c := newTestCamera(t)
	pos, fwd := c.Position(), c.Forward()

	moved := c.Update(0.5, NavigationInput{
		Look:        false,
		CursorDelta: mgl32.Vec2{40, -25},
		Keys:        NewKeySet(DirectionForward, DirectionUp),
	})
	if moved {
		t.Error("expected Update to report no movement without the look control")
	}
	if c.Position() != pos || c.Forward() != fwd {
		t.Errorf("camera changed without the look control: position %v forward %v", c.Position(), c.Forward())
	}
}

func TestCameraUpdateWithoutInputReportsNoMovement(t *testing.T) {
	c := newTestCamera(t)
	pos, fwd := c.Position(), c.Forward()

	if c.Update(0.016, NavigationInput{Look: true}) {
		t.Error("expected no movement for empty input")
	}
	if c.Position() != pos || c.Forward() != fwd {
		t.Errorf("camera changed without input: position %v forward %v", c.Position(), c.Forward())
	}
}

func TestCameraUpdateTranslation(t *testing.T) {
	tests := []struct {
		name     string
		keys     KeySet
		expected mgl32.Vec3
	}{
		{"forward", NewKeySet(DirectionForward), mgl32.Vec3{0, 0, 5.5}},
		{"back", NewKeySet(DirectionBack), mgl32.Vec3{0, 0, 6.5}},
		{"left", NewKeySet(DirectionLeft), mgl32.Vec3{-0.5, 0, 6}},
		{"right", NewKeySet(DirectionRight), mgl32.Vec3{0.5, 0, 6}},
		{"down", NewKeySet(DirectionDown), mgl32.Vec3{0, -0.5, 6}},
		{"up", NewKeySet(DirectionUp), mgl32.Vec3{0, 0.5, 6}},
		{"forward beats back", NewKeySet(DirectionBack, DirectionForward), mgl32.Vec3{0, 0, 5.5}},
		{"back beats left", NewKeySet(DirectionLeft, DirectionBack), mgl32.Vec3{0, 0, 6.5}},
		{"left beats right", NewKeySet(DirectionRight, DirectionLeft), mgl32.Vec3{-0.5, 0, 6}},
		{"right beats down", NewKeySet(DirectionDown, DirectionRight), mgl32.Vec3{0.5, 0, 6}},
		{"down beats up", NewKeySet(DirectionUp, DirectionDown), mgl32.Vec3{0, -0.5, 6}},
		{"all held", NewKeySet(DirectionUp, DirectionDown, DirectionRight, DirectionLeft, DirectionBack, DirectionForward), mgl32.Vec3{0, 0, 5.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(t)
			if !c.Update(0.1, NavigationInput{Look: true, Keys: tt.keys}) {
				t.Fatal("expected Update to report movement")
			}
			if !approxVec3(c.Position(), tt.expected, tolerance) {
				t.Errorf("expected position %v, got %v", tt.expected, c.Position())
			}
			if c.Forward() != (mgl32.Vec3{0, 0, -1}) {
				t.Errorf("translation changed forward direction to %v", c.Forward())
			}
		})
	}
}

func TestCameraUpdateTranslationRecomputesView(t *testing.T) {
	c := newTestCamera(t)
	c.Update(0.2, NavigationInput{Look: true, Keys: NewKeySet(DirectionRight)})

	origin := c.ViewMatrix().Mul4x1(c.Position().Vec4(1)).Vec3()
	if !approxVec3(origin, mgl32.Vec3{}, tolerance) {
		t.Errorf("view matrix not updated after move, camera maps to %v", origin)
	}
}

func TestCameraUpdateYaw(t *testing.T) {
	c := newTestCamera(t)

	if !c.Update(0.016, NavigationInput{Look: true, CursorDelta: mgl32.Vec2{100, 0}}) {
		t.Fatal("expected Update to report rotation")
	}

	// 100px * 0.002 = 0.2 rad to the right.
	expected := mgl32.Vec3{float32(math.Sin(0.2)), 0, -float32(math.Cos(0.2))}
	if !approxVec3(c.Forward(), expected, tolerance) {
		t.Errorf("expected forward %v, got %v", expected, c.Forward())
	}

	center, _ := c.RayDirection(50, 50)
	if !approxVec3(center, expected, tolerance) {
		t.Errorf("expected center ray to follow forward %v, got %v", expected, center)
	}
}

func TestCameraUpdatePitch(t *testing.T) {
	c := newTestCamera(t)

	c.Update(0.016, NavigationInput{Look: true, CursorDelta: mgl32.Vec2{0, 100}})

	// Moving the cursor down the screen looks down.
	expected := mgl32.Vec3{0, -float32(math.Sin(0.2)), -float32(math.Cos(0.2))}
	if !approxVec3(c.Forward(), expected, tolerance) {
		t.Errorf("expected forward %v, got %v", expected, c.Forward())
	}
}

func TestCameraUpdateTranslatesAndRotatesInOneFrame(t *testing.T) {
	c := newTestCamera(t)

	c.Update(0.1, NavigationInput{
		Look:        true,
		CursorDelta: mgl32.Vec2{100, 0},
		Keys:        NewKeySet(DirectionForward),
	})

	// Translation uses the forward direction from before the rotation.
	if !approxVec3(c.Position(), mgl32.Vec3{0, 0, 5.5}, tolerance) {
		t.Errorf("expected position (0, 0, 5.5), got %v", c.Position())
	}
	if c.Forward().X() <= 0 {
		t.Errorf("expected forward to yaw right, got %v", c.Forward())
	}
}

func TestCameraForwardStaysNormalized(t *testing.T) {
	c := newTestCamera(t, WithViewport(4, 4))

	for i := 0; i < 2000; i++ {
		c.Update(0.016, NavigationInput{Look: true, CursorDelta: mgl32.Vec2{7, -3}})
	}
	if l := c.Forward().Len(); math.Abs(float64(l-1)) > 1e-5 {
		t.Errorf("forward drifted to length %f", l)
	}
}

func TestCameraSetters(t *testing.T) {
	c := newTestCamera(t, WithViewport(10, 10))

	c.SetForward(mgl32.Vec3{2, 0, 0})
	if !approxVec3(c.Forward(), mgl32.Vec3{1, 0, 0}, tolerance) {
		t.Errorf("expected normalized forward (1, 0, 0), got %v", c.Forward())
	}
	center, _ := c.RayDirection(5, 5)
	if !approxVec3(center, mgl32.Vec3{1, 0, 0}, tolerance) {
		t.Errorf("expected center ray (1, 0, 0), got %v", center)
	}

	c.SetPosition(mgl32.Vec3{1, 1, 1})
	if c.Position() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected position (1, 1, 1), got %v", c.Position())
	}

	narrow, _ := c.RayDirection(0, 5)
	c.SetFov(90)
	wide, _ := c.RayDirection(0, 5)
	if math.Abs(float64(wide.Z())) <= math.Abs(float64(narrow.Z())) {
		t.Errorf("expected a wider field of view to spread the edge ray, got %v then %v", narrow, wide)
	}
}

func TestCameraPanicsOnDegenerateProjection(t *testing.T) {
	c := NewCamera(WithFov(0))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic for a non-invertible projection")
		}
	}()
	c.Recalculate()
}

func TestInvert(t *testing.T) {
	inv, ok := invert(mgl32.Scale3D(2, 4, 0.5))
	if !ok {
		t.Fatal("expected a scale matrix to be invertible")
	}
	if !approxMat4(inv, mgl32.Scale3D(0.5, 0.25, 2), tolerance) {
		t.Errorf("unexpected inverse %v", inv)
	}

	for name, m := range map[string]mgl32.Mat4{
		"zero":         {},
		"flattened":    mgl32.Scale3D(1, 0, 1),
		"non-finite":   mgl32.Scale3D(float32(math.Inf(1)), 1, 1),
		"not a number": mgl32.Scale3D(float32(math.NaN()), 1, 1),
	} {
		if _, ok := invert(m); ok {
			t.Errorf("%s: expected the matrix to be reported as singular", name)
		}
	}
}
