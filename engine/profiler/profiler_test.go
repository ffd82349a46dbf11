package profiler

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/engine/frame"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func TestProfilerTick(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now))

	stats := frame.FrameStats{
		DeltaTime:      20 * time.Millisecond,
		RenderTime:     5 * time.Millisecond,
		CameraPosition: mgl32.Vec3{1, 2, 3},
		Width:          64,
		Height:         48,
	}

	for i := 0; i < 49; i++ {
		clock.t = clock.t.Add(20 * time.Millisecond)
		if p.Tick(stats) {
			t.Fatalf("logged early at frame %d", i)
		}
	}

	clock.t = clock.t.Add(20 * time.Millisecond)
	if !p.Tick(stats) {
		t.Fatal("expected stats to be logged after one second")
	}

	r := p.Last()
	if r.FPS != 50 {
		t.Errorf("expected 50 FPS, got %v", r.FPS)
	}
	if r.AvgFrameTime != 20*time.Millisecond || r.AvgRenderTime != 5*time.Millisecond {
		t.Errorf("unexpected averages %v / %v", r.AvgFrameTime, r.AvgRenderTime)
	}
	if r.CameraPosition != (mgl32.Vec3{1, 2, 3}) || r.Width != 64 || r.Height != 48 {
		t.Errorf("unexpected report %+v", r)
	}

	// Counters restart after a report.
	clock.t = clock.t.Add(20 * time.Millisecond)
	if p.Tick(stats) {
		t.Error("expected the interval to restart after logging")
	}
}

func TestProfilerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(100*time.Millisecond))

	clock.t = clock.t.Add(100 * time.Millisecond)
	if !p.Tick(frame.FrameStats{}) {
		t.Error("expected a report after the configured interval")
	}
	if got := p.Last().FPS; got != 10 {
		t.Errorf("expected 10 FPS, got %v", got)
	}
}
