// Package bfs provides tunable options and error definitions for the
// breadth-first baseline engine.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for breadth-first execution.
var (
	// ErrNilNeighbors is returned when the neighbor function is nil.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Search via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds the parameters of one breadth-first run.
type Options struct {
	// Ctx allows cooperative cancellation; a done context ends the run
	// with core.TerminationTimeout.
	Ctx context.Context

	// TimeLimit is the wall-clock budget. Zero disables the limit.
	TimeLimit time.Duration

	// ReturnPath materializes Result.Path on success.
	ReturnPath bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no time limit, no path materialization.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		TimeLimit: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit caps the wall-clock duration of the run.
//
//	d > 0: abort with core.TerminationTimeout once exceeded
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithReturnPath enables path materialization in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}
