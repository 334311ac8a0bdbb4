package main

import (
	"testing"

	"ca-engine/internal/core"
	"ca-engine/internal/rule"
)

func TestRunScenarioRule0DiesOut(t *testing.T) {
	r, err := rule.Elementary(0)
	if err != nil {
		t.Fatal(err)
	}
	sc := scenario{width: 16, height: 1, steps: 4, boundary: core.BoundaryWrap}
	res, err := runScenario(sc, r)
	if err != nil {
		t.Fatal(err)
	}
	if res.population != 0 || res.extinctStep != 1 {
		t.Fatalf("rule 0: population=%d extinct=%d, want 0 and 1", res.population, res.extinctStep)
	}
	if !res.cycleFound || res.cycleStart != 1 || res.period != 1 {
		t.Fatalf("rule 0: cycle start=%d period=%d found=%v, want 1/1/true", res.cycleStart, res.period, res.cycleFound)
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	r, err := rule.Parse("life")
	if err != nil {
		t.Fatal(err)
	}
	sc := scenario{width: 12, height: 12, steps: 8, boundary: core.BoundaryWrap, random: true, seed: 7, density: 0.4}
	a, err := runScenario(sc, r)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runScenario(sc, r)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("scenario not deterministic: %v vs %v", a, b)
	}
}

func TestRankPrefersAperiodic(t *testing.T) {
	all := []scenarioResult{
		{rule: "a", cycleFound: true, period: 1, population: 10},
		{rule: "b", cycleFound: false, population: 3},
		{rule: "c", cycleFound: true, period: 4, population: 1},
	}
	rank(all)
	got := []string{all[0].rule, all[1].rule, all[2].rule}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank order = %v, want %v", got, want)
		}
	}
}
