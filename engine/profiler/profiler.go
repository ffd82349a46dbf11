package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-rt/engine/frame"
	"github.com/go-gl/mathgl/mgl32"
)

// Report is one interval's worth of frame statistics.
type Report struct {
	FPS            float64
	AvgFrameTime   time.Duration
	AvgRenderTime  time.Duration
	CameraPosition mgl32.Vec3
	Width          int
	Height         int
	HeapMB         float64
	GCCount        uint32
}

// Profiler tracks frame rate, frame timing, camera position and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	frameTime      time.Duration
	renderTime     time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	now            func() time.Time
	last           Report
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged. Defaults to 1 second.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = d
	}
}

// WithClock sets the time source used to measure intervals.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: optional functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with that frame's statistics.
// Logs FPS, average frame and render time, camera position and heap usage when the update interval has elapsed.
//
// Parameters:
//   - stats: the statistics of the frame just produced
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats frame.FrameStats) bool {
	p.frameCount++
	p.frameTime += stats.DeltaTime
	p.renderTime += stats.RenderTime

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)

	n := time.Duration(p.frameCount)
	p.last = Report{
		FPS:            float64(p.frameCount) / elapsed.Seconds(),
		AvgFrameTime:   p.frameTime / n,
		AvgRenderTime:  p.renderTime / n,
		CameraPosition: stats.CameraPosition,
		Width:          stats.Width,
		Height:         stats.Height,
		HeapMB:         float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:        p.memStats.NumGC,
	}

	pos := p.last.CameraPosition
	log.Printf("[Profiler] FPS: %.2f | Frame Time: %.2f ms | Render: %.2f ms | %dx%d | Camera Position: (%.2f, %.2f, %.2f) | Heap: %.2f MB | GC: %d",
		p.last.FPS, ms(p.last.AvgFrameTime), ms(p.last.AvgRenderTime), p.last.Width, p.last.Height,
		pos.X(), pos.Y(), pos.Z(), p.last.HeapMB, p.last.GCCount)

	p.frameCount = 0
	p.frameTime = 0
	p.renderTime = 0
	p.lastTime = currentTime
	return true
}

// Last returns the most recently logged report.
func (p *Profiler) Last() Report {
	return p.last
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
