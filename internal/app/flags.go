package app

import (
	"flag"
	"fmt"
	"strings"

	"ca-engine/internal/core"
	"ca-engine/internal/evolve"
	"ca-engine/internal/pattern"
	"ca-engine/internal/rule"
)

// defaultPatterns is the seed of the reference 60x60 Life scenario.
var defaultPatterns = []string{"glider@30,28", "blinker@15,40", "lwss@45,18"}

// placementList collects repeatable -pattern flags. The first explicit value
// replaces the defaults.
type placementList struct {
	vals     []string
	explicit bool
}

func (l *placementList) String() string { return strings.Join(l.vals, " ") }

func (l *placementList) Set(value string) error {
	if !l.explicit {
		l.vals, l.explicit = nil, true
	}
	l.vals = append(l.vals, value)
	return nil
}

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Rule     string
	Width    int
	Height   int
	Steps    int
	Boundary string
	Patterns placementList

	Random  bool
	Seed    int64
	Density float64

	// Spacetime shows elementary rules as a growing space-time diagram of
	// SeedRows initial rows instead of evolving every row of the grid.
	Spacetime bool
	SeedRows  int

	Workers int
	Memo    bool

	Scale int
	TPS   int
	Loop  bool
}

// NewConfig returns a Config populated with the reference Life scenario.
func NewConfig() *Config {
	return &Config{
		Rule:      "life",
		Width:     60,
		Height:    60,
		Steps:     220,
		Boundary:  core.BoundaryZero.String(),
		Patterns:  placementList{vals: append([]string(nil), defaultPatterns...)},
		Seed:      42,
		Density:   0.35,
		Spacetime: true,
		SeedRows:  1,
		Workers:   1,
		Scale:     8,
		TPS:       20,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule: Wolfram number, B/S notation or one of "+strings.Join(rule.Names(), ", "))
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to compute")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary policy: zero, wrap or clamp")
	fs.Var(&c.Patterns, "pattern", "pattern placement name@x,y (repeatable); one of "+strings.Join(pattern.Names(), ", "))
	fs.BoolVar(&c.Random, "random", c.Random, "seed with a random soup instead of patterns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for -random")
	fs.BoolVar(&c.Spacetime, "spacetime", c.Spacetime, "draw elementary rules as a space-time diagram")
	fs.IntVar(&c.SeedRows, "seed-rows", c.SeedRows, "initial rows of the space-time diagram")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation sweep")
	fs.BoolVar(&c.Memo, "memo", c.Memo, "memoize rule results by neighbourhood")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second during playback")
	fs.BoolVar(&c.Loop, "loop", c.Loop, "restart playback after the last generation")
}

// Run is a fully evolved scenario.
type Run struct {
	Rule    rule.Rule
	Initial *core.Grid
	History *evolve.History
}

// Build validates the configuration, seeds the initial grid and evolves it.
func (c *Config) Build() (*Run, error) {
	r, err := rule.Parse(c.Rule)
	if err != nil {
		return nil, err
	}
	boundary, err := core.ParseBoundary(c.Boundary)
	if err != nil {
		return nil, err
	}
	placements := make([]pattern.Placement, 0, len(c.Patterns.vals))
	for _, v := range c.Patterns.vals {
		pl, err := pattern.ParsePlacement(v)
		if err != nil {
			return nil, err
		}
		placements = append(placements, pl)
	}

	if table, ok := r.Table(); ok && c.Spacetime {
		return c.buildSpacetime(r, table, boundary, placements)
	}

	grid, err := core.NewGrid(c.Width, c.Height, core.Dead)
	if err != nil {
		return nil, err
	}
	grid.Boundary = boundary
	if err := c.seed(grid, placements); err != nil {
		return nil, err
	}
	opts := []evolve.Option{evolve.WithWorkers(c.Workers)}
	if c.Memo {
		opts = append(opts, evolve.WithMemo())
	}
	hist, err := evolve.Run(grid, r, c.Steps, opts...)
	if err != nil {
		return nil, err
	}
	return &Run{Rule: r, Initial: grid, History: hist}, nil
}

func (c *Config) buildSpacetime(r rule.Rule, table rule.Table, boundary core.Boundary, placements []pattern.Placement) (*Run, error) {
	seed, err := core.NewGrid(c.Width, c.SeedRows, core.Dead)
	if err != nil {
		return nil, fmt.Errorf("app: space-time seed: %w", err)
	}
	seed.Boundary = boundary
	switch {
	case c.Random || c.Patterns.explicit:
		if err := c.seed(seed, placements); err != nil {
			return nil, err
		}
	default:
		// The 2D default patterns make no sense on a single row.
		if err := seed.Set(c.Width/2, c.SeedRows-1, core.Alive); err != nil {
			return nil, err
		}
	}
	hist, err := evolve.UnrollHistory(seed, table, c.Steps)
	if err != nil {
		return nil, err
	}
	return &Run{Rule: r, Initial: seed, History: hist}, nil
}

func (c *Config) seed(g *core.Grid, placements []pattern.Placement) error {
	if c.Random {
		pattern.Randomize(g, c.Seed, c.Density)
		return nil
	}
	return pattern.StampAll(g, placements...)
}
