// SPDX-License-Identifier: MIT

package path

import (
	"context"
	"fmt"
	"math"
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surface as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx is checked once per settled node.
	Ctx context.Context

	// MaxCost prunes every node whose cost from the source exceeds it.
	MaxCost float64

	// OnVisit is called when a node is settled with its final cost.
	// Returning an error aborts the search.
	OnVisit func(node any, cost float64) error

	err error
}

// DefaultOptions returns Options with a background context, no cost limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.Inf(1),
		OnVisit: func(any, float64) error { return nil },
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost stops expanding nodes whose cost exceeds c.
//
//	c ≥ 0: limit to c (+Inf means no limit)
//	c < 0 or NaN: invalid option → ErrOptionViolation
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnVisit registers a callback run on every settled node; returning an
// error from it stops the search.
func WithOnVisit(fn func(node any, cost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
