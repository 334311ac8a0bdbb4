// Package evolve advances grids generation by generation under a rule.
//
// Every sweep reads exclusively from generation k and writes into a separate
// generation k+1 buffer, so no cell ever observes a neighbour that has
// already been updated. The package performs no I/O and has no randomness:
// identical inputs always produce identical histories.
package evolve

import (
	"errors"
	"fmt"

	"ca-engine/internal/core"
	"ca-engine/internal/rule"
)

var (
	// ErrInvalidStepCount reports a negative step count.
	ErrInvalidStepCount = errors.New("evolve: invalid step count")
	// ErrInvalidRule reports a zero or incomplete rule.Rule.
	ErrInvalidRule = errors.New("evolve: invalid rule")
	// ErrInvalidOutput reports a rule result outside {0, 1}.
	ErrInvalidOutput = errors.New("evolve: rule produced invalid cell value")
)

type options struct {
	workers int
	memo    bool
}

// Option tunes how a sweep is executed. Options never change results.
type Option func(*options)

// WithWorkers splits each sweep into n contiguous row bands evaluated
// concurrently. Values below 2 keep the sweep on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithMemo caches Moore rule results by window content for the duration of
// a single sweep.
func WithMemo() Option {
	return func(o *options) { o.memo = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func validate(g *core.Grid, r rule.Rule) error {
	if g == nil || g.W <= 0 || g.H <= 0 {
		return fmt.Errorf("%w: missing initial grid", core.ErrInvalidDimension)
	}
	if !r.Valid() {
		return ErrInvalidRule
	}
	return nil
}

// Run evolves initial for steps generations and returns the steps+1 grids,
// index 0 being a copy of initial. initial itself is never modified.
func Run(initial *core.Grid, r rule.Rule, steps int, opts ...Option) (*History, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStepCount, steps)
	}
	if err := validate(initial, r); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	gens := make([]*core.Grid, steps+1)
	gens[0] = initial.Clone()
	for k := 1; k <= steps; k++ {
		gens[k] = gens[0].Clone()
	}
	for k := 0; k < steps; k++ {
		if err := sweep(gens[k], gens[k+1], r, k, o); err != nil {
			return nil, err
		}
	}
	return &History{rule: r.Name(), gens: gens}, nil
}

// Step computes the generation following src, which is read as generation t.
// The result is a new grid with the same size and boundary policy.
func Step(src *core.Grid, r rule.Rule, t int, opts ...Option) (*core.Grid, error) {
	if err := validate(src, r); err != nil {
		return nil, err
	}
	dst := src.Clone()
	if err := sweep(src, dst, r, t, buildOptions(opts)); err != nil {
		return nil, err
	}
	return dst, nil
}
