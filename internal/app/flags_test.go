package app

import (
	"errors"
	"flag"
	"testing"

	"ca-engine/internal/core"
	"ca-engine/internal/evolve"
	"ca-engine/internal/pattern"
	"ca-engine/internal/rule"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestDefaultScenario(t *testing.T) {
	cfg := parse(t, "-steps", "4")
	run, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if run.Rule.Name() != "life" || run.History.Len() != 5 {
		t.Fatalf("rule %q with %d generations", run.Rule.Name(), run.History.Len())
	}
	g := run.History.View(0)
	if g.W != 60 || g.H != 60 || g.Boundary != core.BoundaryZero {
		t.Fatalf("initial grid %dx%d %s", g.W, g.H, g.Boundary)
	}
	// glider 5 + blinker 3 + lwss 9
	if g.Population() != 17 {
		t.Fatalf("initial population = %d, want 17", g.Population())
	}
	if g.Get(32, 28) != core.Alive || g.Get(15, 40) != core.Alive || g.Get(46, 18) != core.Alive {
		t.Fatal("default patterns not placed at their reference offsets")
	}
}

func TestExplicitPatternsReplaceDefaults(t *testing.T) {
	cfg := parse(t, "-w", "8", "-h", "8", "-steps", "1", "-boundary", "wrap", "-pattern", "block@1,1", "-pattern", "blinker@4,5")
	run, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := core.NewGrid(8, 8, core.Dead)
	block, _ := pattern.Lookup("block")
	blinker, _ := pattern.Lookup("blinker")
	_ = pattern.StampAll(want, pattern.Placement{Pattern: block, X: 1, Y: 1}, pattern.Placement{Pattern: blinker, X: 4, Y: 5})
	if !run.Initial.Equal(want) || run.Initial.Boundary != core.BoundaryWrap {
		t.Fatalf("initial grid:\n%s", run.Initial)
	}
}

func TestBuildMatchesRun(t *testing.T) {
	cfg := parse(t, "-rule", "B36/S23", "-w", "20", "-h", "16", "-steps", "6", "-random", "-seed", "5", "-workers", "3", "-memo")
	run, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	r, _ := rule.Parse("B36/S23")
	want, err := evolve.Run(run.Initial, r, 6)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < want.Len(); k++ {
		if !run.History.View(k).Equal(want.View(k)) {
			t.Fatalf("generation %d differs from a plain Run", k)
		}
	}
}

func TestSpacetimeDefaultSeed(t *testing.T) {
	cfg := parse(t, "-rule", "rule90", "-w", "9", "-steps", "3")
	run, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if run.History.Len() != 4 {
		t.Fatalf("Len = %d, want 4", run.History.Len())
	}
	last := run.History.Last()
	if last.W != 9 || last.H != 4 {
		t.Fatalf("diagram is %dx%d, want 9x4", last.W, last.H)
	}
	if got := last.String(); got != "....#....\n...#.#...\n..#...#..\n.#.#.#.#.\n" {
		t.Fatalf("diagram:\n%s", got)
	}
}

func TestSpacetimeWithSeedPattern(t *testing.T) {
	cfg := parse(t, "-rule", "30", "-w", "20", "-seed-rows", "6", "-steps", "20", "-pattern", "ramp@0,0")
	run, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if run.Initial.H != 6 || run.History.Last().H != 26 {
		t.Fatalf("seed %d rows, diagram %d rows", run.Initial.H, run.History.Last().H)
	}
}

func TestElementaryWithoutSpacetime(t *testing.T) {
	cfg := parse(t, "-rule", "90", "-w", "5", "-h", "2", "-steps", "1", "-spacetime=false", "-pattern", "blinker@1,0")
	run, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := run.History.Last().String(); got != "##.##\n.....\n" {
		t.Fatalf("rows evolved as:\n%s", got)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		args []string
		want error
	}{
		{[]string{"-rule", "nonesuch"}, rule.ErrUnknownRule},
		{[]string{"-rule", "256"}, rule.ErrInvalidRuleNumber},
		{[]string{"-steps", "-1"}, evolve.ErrInvalidStepCount},
		{[]string{"-w", "0"}, core.ErrInvalidDimension},
		{[]string{"-w", "10", "-h", "10"}, core.ErrOutOfBounds},
		{[]string{"-pattern", "unicorn@1,1"}, pattern.ErrUnknownPattern},
	}
	for _, tc := range cases {
		if _, err := parse(t, tc.args...).Build(); !errors.Is(err, tc.want) {
			t.Fatalf("Build(%v) err = %v, want %v", tc.args, err, tc.want)
		}
	}
	if _, err := parse(t, "-boundary", "mirror").Build(); err == nil {
		t.Fatal("Build accepted an unknown boundary")
	}
}
