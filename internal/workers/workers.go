package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Workers runs a set of named workers concurrently.
type Workers struct {
	workers map[string]Worker
	logger  *logger.Logger
}

// NewWorkers creates an empty set.
func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{workers: make(map[string]Worker), logger: logger}
}

// Add registers worker under name.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers[name] = worker
	return w
}

// Run starts every worker and blocks until all of them return. The first
// failure cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", name).Msg("worker started")
			if err := worker.Run(ctx); err != nil {
				return fmt.Errorf("worker %s: %w", name, err)
			}
			w.logger.Info().Str("worker", name).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
