package microkanren

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is how many queries RunBatch evaluates at once unless
// WithWorkers says otherwise.
const DefaultWorkers = 4

// Query is one independent search for RunBatch.
type Query struct {
	ID   string
	N    int
	Goal Goal
}

type Result struct {
	ID     string
	States []State
	Err    error
}

// RunBatch evaluates queries on a bounded number of workers and returns
// their results in input order. Each query is searched on a single
// goroutine and shares no state with the others, so one query failing or
// exceeding its budget does not affect the rest.
func RunBatch(ctx context.Context, queries []Query, opts ...Option) []Result {
	o := newOptions(opts)
	results := make([]Result, len(queries))

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, q := range queries {
		id := q.ID
		if id == "" {
			id = uuid.NewString()
		}
		g.Go(func() error {
			logger := o.logger.With(zap.String("query", id))
			states, err := RunContext(ctx, q.N, q.Goal,
				WithMaxSteps(o.maxSteps), WithLogger(logger))
			if err != nil {
				logger.Warn("query failed", zap.Error(err))
			}
			results[i] = Result{ID: id, States: states, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
