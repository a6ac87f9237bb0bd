package microkanren

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrSearchDepthExceeded is returned by RunContext when a search forces more
// suspensions than its step budget allows.
var ErrSearchDepthExceeded = errors.New("search depth exceeded")

const DefaultMaxSteps = 1_000_000

type options struct {
	maxSteps int
	workers  int
	logger   *zap.Logger
}

// Option configures RunContext and RunBatch.
type Option func(*options)

// WithMaxSteps bounds the number of suspended computations a search may
// force. Zero or less disables the bound.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers sets how many queries RunBatch evaluates at once.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		maxSteps: DefaultMaxSteps,
		workers:  DefaultWorkers,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run evaluates g from the empty state and returns at most n states. A
// negative n takes nothing; RunAll takes every state.
func Run(n int, g Goal) []State {
	return Take(n, g(EmptyState))
}

// RunAll returns every state g produces. g must have finitely many.
func RunAll(g Goal) []State {
	return TakeAll(g(EmptyState))
}

// RunContext is Run with cancellation and a step budget. A negative n asks
// for all states. On error the states found so far are returned with it.
func RunContext(ctx context.Context, n int, g Goal, opts ...Option) ([]State, error) {
	o := newOptions(opts)
	start := time.Now()
	states, steps, err := drive(ctx, n, g(EmptyState), o.maxSteps)
	o.logger.Debug("search finished",
		zap.Int("requested", n),
		zap.Int("results", len(states)),
		zap.Int("steps", steps),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	return states, err
}

func drive(ctx context.Context, n int, str Stream, maxSteps int) ([]State, int, error) {
	states := []State{}
	steps := 0
	for n != 0 {
		str = str.normalize()
		switch str.kind {
		case streamEmpty:
			return states, steps, nil
		case streamImmature:
			if err := ctx.Err(); err != nil {
				return states, steps, fmt.Errorf("search cancelled after %d steps: %w", steps, err)
			}
			if maxSteps > 0 && steps >= maxSteps {
				return states, steps, fmt.Errorf("after %d steps: %w", steps, ErrSearchDepthExceeded)
			}
			steps++
			str = str.step()
		default:
			states = append(states, str.head)
			str = str.tail()
			n--
		}
	}
	return states, steps, nil
}
