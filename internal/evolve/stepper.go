package evolve

import (
	"ca-engine/internal/core"
	"ca-engine/internal/rule"
)

// Stepper evolves a grid indefinitely using two fixed buffers that are
// swapped after each sweep. It suits unbounded playback where keeping the
// whole history is not wanted.
type Stepper struct {
	rule    rule.Rule
	opts    options
	initial *core.Grid
	cur     *core.Grid
	nxt     *core.Grid
	gen     int
}

// NewStepper prepares a Stepper starting from a copy of initial.
func NewStepper(initial *core.Grid, r rule.Rule, opts ...Option) (*Stepper, error) {
	if err := validate(initial, r); err != nil {
		return nil, err
	}
	return &Stepper{
		rule:    r,
		opts:    buildOptions(opts),
		initial: initial.Clone(),
		cur:     initial.Clone(),
		nxt:     initial.Clone(),
	}, nil
}

// Advance computes the next generation. On error the current generation is
// left untouched.
func (s *Stepper) Advance() error {
	if err := sweep(s.cur, s.nxt, s.rule, s.gen, s.opts); err != nil {
		return err
	}
	s.cur, s.nxt = s.nxt, s.cur
	s.gen++
	return nil
}

// Current returns the live buffer. It is overwritten by the second following
// Advance; clone it to keep a snapshot.
func (s *Stepper) Current() *core.Grid { return s.cur }

// Generation returns the number of sweeps applied since the last reset.
func (s *Stepper) Generation() int { return s.gen }

// Rule returns the rule being applied.
func (s *Stepper) Rule() rule.Rule { return s.rule }

// Reset restores the initial grid.
func (s *Stepper) Reset() {
	// Dimensions always match, so the error is impossible.
	_ = s.cur.CopyFrom(s.initial)
	s.gen = 0
}
