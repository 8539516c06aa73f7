// Package workers runs units of work on a bounded number of goroutines.
//
// It defines the Worker interface and a Workers aggregate that runs a set of
// workers under a shared context. The first failing worker cancels the
// context seen by the others and its error is returned from Run.
package workers

import "context"

// Worker is the interface that must be implemented by a unit of work.
//
// Implementations must return promptly once ctx is cancelled.
//
// Example implementation:
//
//	type copyWorker struct{ src, group string }
//
//	func (w *copyWorker) Run(ctx context.Context) error {
//	    _, err := groups.Copy(ctx, w.src, w.group)
//	    return err
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the [Worker] interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
