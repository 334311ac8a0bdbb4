package evolve

import (
	"fmt"

	"ca-engine/internal/core"
	"ca-engine/internal/rule"
)

// Unroll draws the space-time diagram of an elementary automaton. The result
// has initial.H+steps rows: the initial rows are copied unchanged and each
// following row is the evolution of the row above it, starting from the last
// initial row. Left and right neighbours beyond the edge are resolved by the
// initial grid's boundary policy.
func Unroll(initial *core.Grid, t rule.Table, steps int) (*core.Grid, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStepCount, steps)
	}
	if initial == nil {
		return nil, fmt.Errorf("%w: missing initial grid", core.ErrInvalidDimension)
	}
	out, err := core.NewGrid(initial.W, initial.H+steps, core.Dead)
	if err != nil {
		return nil, err
	}
	out.Boundary = initial.Boundary
	if err := out.Stamp(initial.Rows(), 0, 0); err != nil {
		return nil, err
	}

	w, cells := out.W, out.Cells()
	for k := 0; k < steps; k++ {
		y := initial.H - 1 + k
		for x := 0; x < w; x++ {
			cells[(y+1)*w+x] = t.Apply(out.Get(x-1, y), cells[y*w+x], out.Get(x+1, y))
		}
	}
	return out, nil
}

// UnrollHistory replays the space-time diagram one row at a time: generation
// k is the diagram with only the initial rows and the first k evolved rows
// filled, the remaining rows dead. Every generation has the full diagram
// size.
func UnrollHistory(initial *core.Grid, t rule.Table, steps int) (*History, error) {
	full, err := Unroll(initial, t, steps)
	if err != nil {
		return nil, err
	}
	gens := make([]*core.Grid, steps+1)
	for k := range gens {
		g := full.Clone()
		cells := g.Cells()
		clear(cells[(initial.H+k)*g.W:])
		gens[k] = g
	}
	return &History{rule: t.String(), gens: gens}, nil
}
