package rule

import (
	"errors"
	"fmt"
)

// ErrInvalidRuleNumber reports an elementary rule number outside [0, 255].
var ErrInvalidRuleNumber = errors.New("rule: invalid rule number")

// Table is the lookup for a one-dimensional elementary automaton. Entry i is
// the output for the neighbourhood code (left<<2)|(center<<1)|right.
type Table [8]uint8

// NewTable decomposes a Wolfram rule number into its lookup table.
func NewTable(number int) (Table, error) {
	var t Table
	if number < 0 || number > 255 {
		return t, fmt.Errorf("%w: %d", ErrInvalidRuleNumber, number)
	}
	for i := range t {
		t[i] = uint8(number>>i) & 1
	}
	return t, nil
}

// Apply returns the next state of a cell given its neighbourhood.
func (t Table) Apply(left, center, right uint8) uint8 {
	return t[(left<<2)|(center<<1)|right]
}

// Number reassembles the Wolfram rule number.
func (t Table) Number() int {
	n := 0
	for i, v := range t {
		n |= int(v&1) << i
	}
	return n
}

// Evaluate lets a Table drive a 2D sweep: only the middle row of the window
// is consulted, so every row evolves as an independent 1D automaton.
func (t Table) Evaluate(_ uint8, _ int, w Window, _ int) uint8 {
	return t.Apply(w[1][0], w[1][1], w[1][2])
}

func (t Table) String() string { return fmt.Sprintf("rule %d", t.Number()) }
