package evolve

import "ca-engine/internal/core"

// History is the ordered sequence of generations produced by Run. Index 0 is
// the initial state and index k the state after k rule applications.
type History struct {
	rule string
	gens []*core.Grid
}

// Rule names the rule that produced the history.
func (h *History) Rule() string { return h.rule }

// Len returns the number of generations, initial state included.
func (h *History) Len() int { return len(h.gens) }

// Steps returns the number of rule applications recorded.
func (h *History) Steps() int { return len(h.gens) - 1 }

// View returns generation i without copying. The grid is shared with the
// history and must not be modified.
func (h *History) View(i int) *core.Grid { return h.gens[i] }

// At returns an independent copy of generation i.
func (h *History) At(i int) *core.Grid { return h.gens[i].Clone() }

// Last returns the final generation without copying.
func (h *History) Last() *core.Grid { return h.gens[len(h.gens)-1] }

// Rows exports generation i as a fresh slice of rows.
func (h *History) Rows(i int) [][]uint8 { return h.gens[i].Rows() }

// Populations returns the live cell count of every generation.
func (h *History) Populations() []int {
	pops := make([]int, len(h.gens))
	for i, g := range h.gens {
		pops[i] = g.Population()
	}
	return pops
}

// Cycle finds the first generation that repeats an earlier one. start is
// the index of the earlier occurrence and period the distance between the
// two. ok is false when every recorded generation is distinct.
func (h *History) Cycle() (start, period int, ok bool) {
	seen := make(map[string]int, len(h.gens))
	for i, g := range h.gens {
		key := string(g.Cells())
		if j, dup := seen[key]; dup {
			return j, i - j, true
		}
		seen[key] = i
	}
	return 0, 0, false
}
