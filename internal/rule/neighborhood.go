package rule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNotation reports a malformed B/S rule string.
var ErrInvalidNotation = errors.New("rule: invalid B/S notation")

// Window is the 3x3 Moore neighbourhood of a cell, indexed [dy+1][dx+1].
type Window [3][3]uint8

// Center returns the cell the window is centred on.
func (w Window) Center() uint8 { return w[1][1] }

// Sum counts the live cells among the eight neighbours.
func (w Window) Sum() int {
	s := 0
	for _, row := range w {
		for _, v := range row {
			s += int(v)
		}
	}
	return s - int(w[1][1])
}

// Key packs the window into a 9-bit code, row-major from the top-left cell.
func (w Window) Key() uint16 {
	var k uint16
	for _, row := range w {
		for _, v := range row {
			k = k<<1 | uint16(v&1)
		}
	}
	return k
}

// Neighborhood computes the next value of a cell from its window. center and
// neighborSum are derived from window and passed for convenience; t is the
// index of the generation being read. Implementations must be pure.
type Neighborhood interface {
	Evaluate(center uint8, neighborSum int, window Window, t int) uint8
}

// Func adapts an ordinary function to the Neighborhood interface.
type Func func(center uint8, neighborSum int, window Window, t int) uint8

// Evaluate calls f.
func (f Func) Evaluate(center uint8, neighborSum int, window Window, t int) uint8 {
	return f(center, neighborSum, window, t)
}

// LifeLike is an outer-totalistic rule: a dead cell is born when its live
// neighbour count is in the birth set and a live cell survives when the
// count is in the survival set.
type LifeLike struct {
	born    uint16
	survive uint16
}

// Life is Conway's Game of Life, B3/S23.
var Life = MustLifeLike("B3/S23")

// ParseLifeLike reads a rule in B/S notation such as "B3/S23" or "b36/s23".
// The survival part may be given first and either set may be empty.
func ParseLifeLike(s string) (LifeLike, error) {
	var r LifeLike
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	var seenB, seenS bool
	for _, p := range parts {
		if p == "" {
			return r, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		var set *uint16
		switch p[0] {
		case 'B', 'b':
			if seenB {
				return r, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
			}
			seenB, set = true, &r.born
		case 'S', 's':
			if seenS {
				return r, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
			}
			seenS, set = true, &r.survive
		default:
			return r, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		for _, c := range p[1:] {
			if c < '0' || c > '8' {
				return r, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
			}
			*set |= 1 << (c - '0')
		}
	}
	return r, nil
}

// MustLifeLike is like ParseLifeLike but panics on malformed input.
func MustLifeLike(s string) LifeLike {
	r, err := ParseLifeLike(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Evaluate applies the birth/survival sets.
func (r LifeLike) Evaluate(center uint8, neighborSum int, _ Window, _ int) uint8 {
	set := r.born
	if center != 0 {
		set = r.survive
	}
	if neighborSum >= 0 && neighborSum <= 8 && set&(1<<neighborSum) != 0 {
		return 1
	}
	return 0
}

// String formats the rule in canonical B/S notation.
func (r LifeLike) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.born)
	b.WriteString("/S")
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, set uint16) {
	for n := 0; n <= 8; n++ {
		if set&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
}
