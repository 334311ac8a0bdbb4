package core

import (
	"errors"
	"fmt"
	"strings"
)

// Cell values. No other value is ever stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrInvalidDimension reports a non-positive or mismatched grid size.
	ErrInvalidDimension = errors.New("core: invalid grid dimension")
	// ErrOutOfBounds reports a write or stamp outside the grid extents.
	ErrOutOfBounds = errors.New("core: coordinates out of bounds")
	// ErrInvalidCell reports a cell value outside {0, 1}.
	ErrInvalidCell = errors.New("core: invalid cell value")
)

// Boundary selects how reads outside the grid extents are resolved.
type Boundary uint8

const (
	// BoundaryZero treats every cell beyond the edge as dead.
	BoundaryZero Boundary = iota
	// BoundaryWrap wraps coordinates toroidally.
	BoundaryWrap
	// BoundaryClamp replicates the nearest edge cell.
	BoundaryClamp
)

var boundaryNames = [...]string{
	BoundaryZero:  "zero",
	BoundaryWrap:  "wrap",
	BoundaryClamp: "clamp",
}

func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// ParseBoundary maps a policy name back to its Boundary value.
func ParseBoundary(s string) (Boundary, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range boundaryNames {
		if n == name {
			return Boundary(i), nil
		}
	}
	return BoundaryZero, fmt.Errorf("core: unknown boundary policy %q", s)
}

// Grid stores a fixed-size 2D grid of binary cells in row-major order.
type Grid struct {
	W, H     int
	Boundary Boundary
	data     []uint8
}

// NewGrid allocates a w*h grid with every cell set to fill.
func NewGrid(w, h int, fill uint8) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if fill > Alive {
		return nil, fmt.Errorf("%w: fill %d", ErrInvalidCell, fill)
	}
	g := &Grid{W: w, H: h, data: make([]uint8, w*h)}
	if fill != Dead {
		for i := range g.data {
			g.data[i] = fill
		}
	}
	return g, nil
}

// Cells exposes the backing slice for renderers. Callers must treat it as
// read-only.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the cell at (x, y). Coordinates outside the grid are resolved
// through the grid's boundary policy.
func (g *Grid) Get(x, y int) uint8 {
	if g.InBounds(x, y) {
		return g.data[y*g.W+x]
	}
	switch g.Boundary {
	case BoundaryWrap:
		x, y = g.Wrap(x, y)
	case BoundaryClamp:
		x = clamp(x, g.W)
		y = clamp(y, g.H)
	default:
		return Dead
	}
	return g.data[y*g.W+x]
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Set writes a single cell. Writes are never resolved through the boundary
// policy.
func (g *Grid) Set(x, y int, v uint8) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	if v > Alive {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, x, y)
	}
	g.data[y*g.W+x] = v
	return nil
}

// Stamp overwrites the block starting at (x, y) with cells, given as rows.
// Nothing is written unless the whole block fits and holds binary values.
func (g *Grid) Stamp(cells [][]uint8, x, y int) error {
	if len(cells) == 0 {
		return nil
	}
	w := len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return fmt.Errorf("%w: ragged row %d", ErrInvalidCell, r)
		}
		for c, v := range row {
			if v > Alive {
				return fmt.Errorf("%w: %d at row %d col %d", ErrInvalidCell, v, r, c)
			}
		}
	}
	if x < 0 || y < 0 || x+w > g.W || y+len(cells) > g.H {
		return fmt.Errorf("%w: %dx%d block at (%d,%d) in %dx%d", ErrOutOfBounds, w, len(cells), x, y, g.W, g.H)
	}
	for r, row := range cells {
		copy(g.data[(y+r)*g.W+x:], row)
	}
	return nil
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy, boundary policy included.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, Boundary: g.Boundary, data: append([]uint8(nil), g.data...)}
}

// CopyFrom replaces the cell values with those of src, which must have the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrInvalidDimension, src.W, src.H, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

// Equal reports whether both grids have the same size and cell values. The
// boundary policy is not compared.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Rows exports the cells as a freshly allocated slice of rows.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.H)
	for y := range rows {
		rows[y] = append([]uint8(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

// String renders the grid using '#' for live and '.' for dead cells, one
// line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for _, v := range g.data[y*g.W : (y+1)*g.W] {
			if v != Dead {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
