package evolve

import (
	"errors"
	"testing"

	"ca-engine/internal/core"
	"ca-engine/internal/pattern"
	"ca-engine/internal/rule"
)

func TestUnrollSierpinski(t *testing.T) {
	seed := newGrid(t, 9, 1, core.BoundaryZero)
	_ = seed.Set(4, 0, core.Alive)
	tbl, _ := rule.NewTable(90)

	out, err := Unroll(seed, tbl, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := "" +
		"....#....\n" +
		"...#.#...\n" +
		"..#...#..\n" +
		".#.#.#.#.\n"
	if out.String() != want {
		t.Fatalf("rule 90 diagram:\n%s\nwant:\n%s", out, want)
	}
}

func TestUnrollKeepsSeedRows(t *testing.T) {
	p, err := pattern.Lookup("ramp")
	if err != nil {
		t.Fatal(err)
	}
	seed := newGrid(t, p.W(), p.H(), core.BoundaryZero)
	if err := pattern.Stamp(seed, p, 0, 0); err != nil {
		t.Fatal(err)
	}
	tbl, _ := rule.NewTable(30)
	out, err := Unroll(seed, tbl, 20)
	if err != nil {
		t.Fatal(err)
	}
	if out.H != p.H()+20 || out.W != p.W() {
		t.Fatalf("diagram is %dx%d", out.W, out.H)
	}
	rows := out.Rows()
	for y := 0; y < p.H(); y++ {
		for x := 0; x < p.W(); x++ {
			if rows[y][x] != p.Cells[y][x] {
				t.Fatalf("seed row %d changed", y)
			}
		}
	}

	// Each evolved row must equal one elementary step of the row above.
	for y := p.H(); y < out.H; y++ {
		above := newGrid(t, out.W, 1, core.BoundaryZero)
		_ = above.Stamp([][]uint8{rows[y-1]}, 0, 0)
		next, err := Step(above, rule.FromTable(tbl), 0)
		if err != nil {
			t.Fatal(err)
		}
		for x, v := range next.Rows()[0] {
			if rows[y][x] != v {
				t.Fatalf("row %d col %d = %d, want %d", y, x, rows[y][x], v)
			}
		}
	}
}

func TestUnrollHistory(t *testing.T) {
	seed := newGrid(t, 7, 1, core.BoundaryZero)
	_ = seed.Set(3, 0, core.Alive)
	tbl, _ := rule.NewTable(90)

	h, err := UnrollHistory(seed, tbl, 3)
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 4 {
		t.Fatalf("Len = %d, want 4", h.Len())
	}
	for k := 0; k < h.Len(); k++ {
		g := h.View(k)
		if g.W != 7 || g.H != 4 {
			t.Fatalf("generation %d is %dx%d, want 7x4", k, g.W, g.H)
		}
		for y := k + 1; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if g.Get(x, y) != core.Dead {
					t.Fatalf("generation %d: row %d should still be empty", k, y)
				}
			}
		}
	}
	full, _ := Unroll(seed, tbl, 3)
	if !h.Last().Equal(full) {
		t.Fatal("last generation must be the full diagram")
	}
}

func TestUnrollRejectsNegativeSteps(t *testing.T) {
	seed := newGrid(t, 3, 1, core.BoundaryZero)
	if _, err := Unroll(seed, rule.Table{}, -1); !errors.Is(err, ErrInvalidStepCount) {
		t.Fatalf("err = %v, want ErrInvalidStepCount", err)
	}
}
