package snapshot

import "time"

// WriterBuilderOption is a functional option for configuring a Writer.
type WriterBuilderOption func(*writer)

// WithWorkers sets the number of encoder goroutines. Defaults to 2.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - WriterBuilderOption: option function to apply
func WithWorkers(n int) WriterBuilderOption {
	return func(w *writer) {
		if n < 1 {
			n = 1
		}
		w.workers = n
	}
}

// WithClock sets the time source used for file names.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - WriterBuilderOption: option function to apply
func WithClock(now func() time.Time) WriterBuilderOption {
	return func(w *writer) {
		w.now = now
	}
}
