package cover

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "cover")

// BudgetPolicy decides what MaxCover does when the next greedy pick is unaffordable.
type BudgetPolicy int

const (
	// StopAtBudget ends the selection at the first unaffordable pick.
	StopAtBudget BudgetPolicy = iota
	// SkipOverBudget drops the unaffordable pick and keeps choosing among
	// the sets that still fit the remaining budget.
	SkipOverBudget
)

// Observer receives one notification per completed solve call.
// Implementations must be safe for concurrent use; see lvcover/metrics.
type Observer interface {
	ObserveSolve(algo Algorithm, status Status, steps int, d time.Duration)
}

// Option configures a solve call.
type Option func(*Options)

// Options holds the configurable parameters shared by all engines.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxSteps bounds the number of exact-cover search nodes. 0 means unlimited.
	MaxSteps int

	// TimeLimit bounds the wall-clock time of exact-cover search. 0 means unlimited.
	TimeLimit time.Duration

	// Parallelism is the number of root branches explored concurrently by
	// exact cover. Values ≤ 1 run sequentially.
	Parallelism int

	// BudgetPolicy applies to MaxCover only. Default StopAtBudget.
	BudgetPolicy BudgetPolicy

	// Logger receives debug traces; defaults to the package logger.
	Logger logrus.FieldLogger

	// Observer, if non-nil, is notified once per solve.
	Observer Observer
}

// DefaultOptions returns Options with:
//   - Background context
//   - no step or time budget
//   - sequential search
//   - StopAtBudget
//   - the package logger, no observer
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxSteps:     0,
		TimeLimit:    0,
		Parallelism:  1,
		BudgetPolicy: StopAtBudget,
		Logger:       log,
		Observer:     nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds exact-cover search to n nodes (0 = unlimited).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithTimeLimit bounds exact-cover search to d of wall-clock time (0 = unlimited).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithParallelism explores up to p root branches of exact cover concurrently.
func WithParallelism(p int) Option {
	return func(o *Options) {
		o.Parallelism = p
	}
}

// WithBudgetPolicy selects MaxCover's behavior on an unaffordable pick.
func WithBudgetPolicy(p BudgetPolicy) Option {
	return func(o *Options) {
		o.BudgetPolicy = p
	}
}

// WithLogger routes debug traces to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs obs to be notified once per solve.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// applyOptions folds opts over DefaultOptions and validates the result.
func applyOptions(opts []Option) (Options, error) {
	var (
		o  = DefaultOptions()
		fn Option
	)
	for _, fn = range opts {
		fn(&o)
	}
	if err := validateOptions(o); err != nil {
		return Options{}, err
	}

	return o, nil
}
