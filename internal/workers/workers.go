package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers is a set of workers executed with at most limit of them running
// at the same time.
type Workers struct {
	workers []Worker
	limit   int
}

// New creates a Workers aggregate. A limit below one runs the workers one
// after another.
func New(limit int, workers ...Worker) *Workers {
	if limit < 1 {
		limit = 1
	}
	return &Workers{
		workers: workers,
		limit:   limit,
	}
}

// Add appends workers to the set.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Len returns the number of workers in the set.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts the workers in insertion order and waits for all started ones
// to finish. No further worker is started once one has failed or ctx is done.
func (w *Workers) Run(ctx context.Context) error {
	limit := w.limit
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, worker := range w.workers {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return worker.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
