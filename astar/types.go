// Package astar defines tunable options, tie-break policies, and sentinel
// errors for the best-first engine.
package astar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for best-first execution.
var (
	// ErrNilNeighbors is returned when the neighbor function is nil.
	ErrNilNeighbors = errors.New("astar: neighbor function is nil")

	// ErrNilHeuristic is returned when the heuristic function is nil.
	ErrNilHeuristic = errors.New("astar: heuristic function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// TieBreak selects the secondary ordering among frontier entries that share
// the same bound f = g+h. The policy changes which optimal solution is found
// first and how much of the plateau is expanded, never the solution cost.
type TieBreak int

const (
	// TieBreakLowH prefers the entry with the smaller heuristic estimate
	// (deeper along its path). The default.
	TieBreakLowH TieBreak = iota

	// TieBreakHighG prefers the entry with the larger path cost, which
	// drives the search depth-first across f-plateaus.
	TieBreakHighG

	// TieBreakFIFO breaks ties by insertion order, oldest first.
	TieBreakFIFO

	// TieBreakLIFO breaks ties by insertion order, newest first.
	TieBreakLIFO
)

// String returns the short policy name used in experiment records:
// "h", "g", "fifo" or "lifo".
func (tb TieBreak) String() string {
	switch tb {
	case TieBreakHighG:
		return "g"
	case TieBreakFIFO:
		return "fifo"
	case TieBreakLIFO:
		return "lifo"
	default:
		return "h"
	}
}

// ParseTieBreak maps a short policy name back to its TieBreak value.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "h":
		return TieBreakLowH, nil
	case "g":
		return TieBreakHighG, nil
	case "fifo":
		return TieBreakFIFO, nil
	case "lifo":
		return TieBreakLIFO, nil
	default:
		return 0, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
	}
}

// Option configures Search via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds the parameters of one best-first run.
type Options struct {
	// Ctx allows cooperative cancellation; a done context ends the run
	// with core.TerminationTimeout.
	Ctx context.Context

	// TimeLimit is the wall-clock budget. Zero disables the limit.
	TimeLimit time.Duration

	// TieBreak orders frontier entries with equal f.
	TieBreak TieBreak

	// ReturnPath materializes Result.Path on success.
	ReturnPath bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no time limit, TieBreakLowH, no path materialization.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		TimeLimit: 0,
		TieBreak:  TieBreakLowH,
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

// WithTieBreak selects the secondary frontier ordering.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		if tb < TieBreakLowH || tb > TieBreakLIFO {
			o.err = fmt.Errorf("%w: unknown tie-break (%d)", ErrOptionViolation, tb)
			return
		}
		o.TieBreak = tb
	}
}

// WithReturnPath enables path materialization in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}
