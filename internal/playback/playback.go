// Package playback exposes a generation history as a core.Sim so renderers
// can page through it.
package playback

import (
	"strconv"

	"ca-engine/internal/core"
	"ca-engine/internal/evolve"
)

// Player is a read-only cursor over a History.
type Player struct {
	hist *evolve.History
	idx  int

	// Loop restarts from generation 0 after the last one.
	Loop bool
}

// New returns a Player positioned on the initial generation.
func New(h *evolve.History) *Player {
	return &Player{hist: h}
}

// Name returns the rule that produced the history.
func (p *Player) Name() string { return p.hist.Rule() }

// Size returns the grid dimensions.
func (p *Player) Size() core.Size {
	g := p.hist.View(0)
	return core.Size{W: g.W, H: g.H}
}

// Reset rewinds to the initial generation.
func (p *Player) Reset() { p.idx = 0 }

// Step advances one generation. At the end of the history it either stays
// on the last generation or wraps to the first, depending on Loop.
func (p *Player) Step() {
	if p.idx < p.hist.Len()-1 {
		p.idx++
		return
	}
	if p.Loop {
		p.idx = 0
	}
}

// Back moves one generation towards the start.
func (p *Player) Back() {
	if p.idx > 0 {
		p.idx--
	}
}

// Seek jumps to generation i, clamped to the recorded range.
func (p *Player) Seek(i int) {
	p.idx = max(0, min(i, p.hist.Len()-1))
}

// Done reports whether the cursor sits on the last generation.
func (p *Player) Done() bool { return p.idx == p.hist.Len()-1 }

// Generation returns the index of the generation being shown.
func (p *Player) Generation() int { return p.idx }

// Grid returns the generation being shown. It must not be modified.
func (p *Player) Grid() *core.Grid { return p.hist.View(p.idx) }

// Cells exposes the cells of the generation being shown.
func (p *Player) Cells() []uint8 { return p.Grid().Cells() }

// Parameters describes the run and the current generation.
func (p *Player) Parameters() core.ParameterSnapshot {
	g := p.Grid()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: p.Name()},
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeString, Value: g.Boundary.String()},
				intParam("w", "Width", g.W),
				intParam("h", "Height", g.H),
				intParam("steps", "Steps", p.hist.Steps()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", p.idx),
				intParam("population", "Population", g.Population()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
