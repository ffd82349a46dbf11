package snapshot

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
)

// Writer saves rendered frames as PNG files without blocking the frame loop.
// Encoding runs on a worker pool; the frame is copied before Save returns.
type Writer interface {
	// Save queues buf to be written as render_<timestamp>_<n>.png in the output directory.
	//
	// Parameters:
	//   - buf: the frame to save; it is copied, so the caller may reuse it immediately
	//
	// Returns:
	//   - string: the path the file will be written to
	Save(buf *renderer.PixelBuffer) string

	// Flush blocks until every queued frame has been written.
	//
	// Returns:
	//   - error: the joined errors of all writes that failed since the last Flush
	Flush() error

	// Dir returns the output directory.
	Dir() string

	// Close flushes pending writes and stops the encoder workers. Save is ignored afterwards.
	// Calling Close more than once is a no-op.
	//
	// Returns:
	//   - error: the result of the final Flush
	Close() error
}

type writer struct {
	dir     string
	workers int
	now     func() time.Time
	pool    worker.DynamicWorkerPool

	wg     sync.WaitGroup
	mu     sync.Mutex
	errs   []error
	seq    int
	closed bool
}

var _ Writer = &writer{}

// NewWriter creates a Writer that saves into dir. The directory is created by the first write.
//
// Parameters:
//   - dir: the output directory
//   - options: optional functional options to configure the writer
//
// Returns:
//   - Writer: the new writer
//   - error: an error if dir is empty
func NewWriter(dir string, options ...WriterBuilderOption) (Writer, error) {
	w := &writer{
		dir:     dir,
		workers: 2,
		now:     time.Now,
	}
	for _, opt := range options {
		opt(w)
	}
	if dir == "" {
		return nil, errors.New("snapshot directory must not be empty")
	}
	w.pool = worker.NewDynamicWorkerPool(w.workers, 64, 1*time.Second)
	return w, nil
}

func (w *writer) Save(buf *renderer.PixelBuffer) string {
	frame := buf.Clone()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		log.Printf("[Snapshot] writer is closed, frame dropped")
		return ""
	}
	w.seq++
	id := w.seq
	w.wg.Add(1)
	w.mu.Unlock()

	path := filepath.Join(w.dir, fmt.Sprintf("render_%s_%d.png", w.now().Format("20060102_150405"), id))

	w.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer w.wg.Done()
			if err := writePNG(path, frame); err != nil {
				log.Printf("[Snapshot] %v", err)
				w.mu.Lock()
				w.errs = append(w.errs, err)
				w.mu.Unlock()
				return nil, nil
			}
			log.Printf("[Snapshot] saved %dx%d frame to %s", frame.Width, frame.Height, path)
			return nil, nil
		},
	})
	return path
}

func (w *writer) Flush() error {
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	err := errors.Join(w.errs...)
	w.errs = nil
	return err
}

func (w *writer) Dir() string {
	return w.dir
}

func (w *writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	err := w.Flush()
	w.pool.Stop()
	return err
}

// writePNG encodes buf to a new file at path.
func writePNG(path string, buf *renderer.PixelBuffer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, buf.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
