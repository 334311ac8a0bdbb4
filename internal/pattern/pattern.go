// Package pattern places seed patterns onto grids.
package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ca-engine/internal/core"
)

var (
	// ErrInvalidPattern reports an empty, ragged or non-binary pattern.
	ErrInvalidPattern = errors.New("pattern: invalid pattern")
	// ErrUnknownPattern reports a name missing from the library.
	ErrUnknownPattern = errors.New("pattern: unknown pattern")
)

// Pattern is a small rectangular bit matrix, stored as rows.
type Pattern struct {
	Name  string
	Cells [][]uint8
}

// New validates rows and copies them into a Pattern.
func New(name string, rows [][]uint8) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, fmt.Errorf("%w: %s is empty", ErrInvalidPattern, name)
	}
	cells := make([][]uint8, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return Pattern{}, fmt.Errorf("%w: %s row %d has %d cells, want %d", ErrInvalidPattern, name, y, len(row), len(rows[0]))
		}
		for x, v := range row {
			if v > core.Alive {
				return Pattern{}, fmt.Errorf("%w: %s has value %d at (%d,%d)", ErrInvalidPattern, name, v, x, y)
			}
		}
		cells[y] = append([]uint8(nil), row...)
	}
	return Pattern{Name: name, Cells: cells}, nil
}

// Parse reads a plaintext picture, one row per line. 'O', '*', '#' and '1'
// mark live cells; '.', '0' and '-' mark dead ones. Lines starting with '!'
// are comments. Short rows are padded with dead cells.
func Parse(name, text string) (Pattern, error) {
	var rows [][]uint8
	width := 0
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		row := make([]uint8, 0, len(line))
		for _, c := range line {
			switch c {
			case 'O', '*', '#', '1':
				row = append(row, core.Alive)
			case '.', '0', '-':
				row = append(row, core.Dead)
			default:
				return Pattern{}, fmt.Errorf("%w: %s line %d: unexpected %q", ErrInvalidPattern, name, i+1, c)
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	for i := range rows {
		for len(rows[i]) < width {
			rows[i] = append(rows[i], core.Dead)
		}
	}
	return New(name, rows)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(name, text string) Pattern {
	p, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return p
}

// W returns the pattern width.
func (p Pattern) W() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// H returns the pattern height.
func (p Pattern) H() int { return len(p.Cells) }

func (p Pattern) String() string {
	var b strings.Builder
	for _, row := range p.Cells {
		for _, v := range row {
			if v != core.Dead {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Placement pairs a pattern with the grid coordinates of its top-left cell.
type Placement struct {
	Pattern Pattern
	X, Y    int
}

// Stamp overwrites the region of g under p with p's cells. A pattern that
// does not fit entirely inside g is rejected and g is left unchanged.
func Stamp(g *core.Grid, p Pattern, x, y int) error {
	if p.H() == 0 || p.W() == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidPattern, p.Name)
	}
	if err := g.Stamp(p.Cells, x, y); err != nil {
		return fmt.Errorf("pattern: stamp %s: %w", p.Name, err)
	}
	return nil
}

// StampAll stamps each placement in order, later placements overwriting
// earlier ones where they overlap. Every placement is checked before the
// first one is written.
func StampAll(g *core.Grid, placements ...Placement) error {
	for _, pl := range placements {
		p := pl.Pattern
		if p.H() == 0 || p.W() == 0 {
			return fmt.Errorf("%w: %s is empty", ErrInvalidPattern, p.Name)
		}
		if pl.X < 0 || pl.Y < 0 || pl.X+p.W() > g.W || pl.Y+p.H() > g.H {
			return fmt.Errorf("pattern: stamp %s: %w: %dx%d at (%d,%d) in %dx%d",
				p.Name, core.ErrOutOfBounds, p.W(), p.H(), pl.X, pl.Y, g.W, g.H)
		}
	}
	for _, pl := range placements {
		if err := Stamp(g, pl.Pattern, pl.X, pl.Y); err != nil {
			return err
		}
	}
	return nil
}

// Randomize overwrites every cell of g with a deterministic binary soup.
func Randomize(g *core.Grid, seed int64, density float64) {
	core.NewRNG(seed).FillBinary(g.Cells(), density)
}

// ParsePlacement reads a "name@x,y" placement of a library pattern. The
// offset defaults to (0,0) when omitted.
func ParsePlacement(s string) (Placement, error) {
	name, at, found := strings.Cut(strings.TrimSpace(s), "@")
	p, err := Lookup(name)
	if err != nil {
		return Placement{}, err
	}
	pl := Placement{Pattern: p}
	if !found {
		return pl, nil
	}
	xs, ys, ok := strings.Cut(at, ",")
	if !ok {
		return Placement{}, fmt.Errorf("pattern: placement %q: want name@x,y", s)
	}
	if pl.X, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return Placement{}, fmt.Errorf("pattern: placement %q: %w", s, err)
	}
	if pl.Y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return Placement{}, fmt.Errorf("pattern: placement %q: %w", s, err)
	}
	return pl, nil
}
