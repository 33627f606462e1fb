package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-param-auth/internal/logger"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func New(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add appends workers to the end of the run list.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run executes the workers one by one and stops at the first failure,
// returning its error prefixed with the worker name. Cancelling ctx stops
// before the next worker starts.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := worker.Run(ctx); err != nil {
			w.logger.Error().Err(err).Str("worker", worker.Name()).Msg("worker failed")
			return fmt.Errorf("%s: %w", worker.Name(), err)
		}

		w.logger.Debug().Str("worker", worker.Name()).Msg("worker finished")
	}

	return nil
}

// Func adapts a plain function to the Worker interface.
type Func struct {
	name string
	fn   func(ctx context.Context) error
}

func NewFunc(name string, fn func(ctx context.Context) error) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Name() string {
	return f.name
}

func (f *Func) Run(ctx context.Context) error {
	return f.fn(ctx)
}
