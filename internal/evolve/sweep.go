package evolve

import (
	"fmt"

	"ca-engine/internal/core"
	"ca-engine/internal/rule"

	"golang.org/x/sync/errgroup"
)

// sweep fills every cell of dst from src. The two grids must be distinct and
// of equal size.
func sweep(src, dst *core.Grid, r rule.Rule, t int, o options) error {
	workers := o.workers
	if workers > src.H {
		workers = src.H
	}
	if workers <= 1 {
		return sweepRows(src, dst, r, t, 0, src.H, o.memo)
	}

	var eg errgroup.Group
	band, rem := src.H/workers, src.H%workers
	from := 0
	for i := 0; i < workers; i++ {
		to := from + band
		if i < rem {
			to++
		}
		y0, y1 := from, to
		eg.Go(func() error {
			return sweepRows(src, dst, r, t, y0, y1, o.memo)
		})
		from = to
	}
	return eg.Wait()
}

func sweepRows(src, dst *core.Grid, r rule.Rule, t, y0, y1 int, memo bool) error {
	if table, ok := r.Table(); ok {
		elementaryRows(src, dst, table, y0, y1)
		return nil
	}
	hood, _ := r.Neighborhood()
	var cache *windowCache
	if memo {
		cache = newWindowCache()
	}

	out := dst.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < src.W; x++ {
			win := gather(src, x, y)
			var v uint8
			if cache != nil {
				v = cache.eval(hood, win, t)
			} else {
				v = hood.Evaluate(win.Center(), win.Sum(), win, t)
			}
			if v > core.Alive {
				return fmt.Errorf("%w: %d at (%d,%d) generation %d", ErrInvalidOutput, v, x, y, t+1)
			}
			out[y*src.W+x] = v
		}
	}
	return nil
}

func elementaryRows(src, dst *core.Grid, table rule.Table, y0, y1 int) {
	out := dst.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < src.W; x++ {
			out[y*src.W+x] = table.Apply(src.Get(x-1, y), src.Get(x, y), src.Get(x+1, y))
		}
	}
}

// gather reads the 3x3 window around (x, y). Perimeter cells go through the
// grid's boundary policy; interior cells are read directly.
func gather(g *core.Grid, x, y int) rule.Window {
	var w rule.Window
	if x > 0 && y > 0 && x < g.W-1 && y < g.H-1 {
		cells := g.Cells()
		for dy := 0; dy < 3; dy++ {
			base := (y+dy-1)*g.W + x - 1
			w[dy][0], w[dy][1], w[dy][2] = cells[base], cells[base+1], cells[base+2]
		}
		return w
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			w[dy+1][dx+1] = g.Get(x+dx, y+dy)
		}
	}
	return w
}

const unset = 0xff

// windowCache memoizes rule output by window content. A cache lives for one
// sweep of one worker, so the generation index is constant across entries.
type windowCache struct {
	out [512]uint8
}

func newWindowCache() *windowCache {
	c := &windowCache{}
	for i := range c.out {
		c.out[i] = unset
	}
	return c
}

func (c *windowCache) eval(hood rule.Neighborhood, win rule.Window, t int) uint8 {
	k := win.Key()
	if v := c.out[k]; v != unset {
		return v
	}
	v := hood.Evaluate(win.Center(), win.Sum(), win, t)
	c.out[k] = v
	return v
}
