package evolve

import (
	"errors"
	"testing"

	"ca-engine/internal/core"
	"ca-engine/internal/rule"
)

func TestStepperMatchesRun(t *testing.T) {
	g := soup(t, 18, 14, core.BoundaryWrap, 4)
	r := lifeRule(t)
	h, err := Run(g, r, 12)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStepper(g, r)
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k <= 12; k++ {
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
		if s.Generation() != k || !s.Current().Equal(h.View(k)) {
			t.Fatalf("stepper generation %d differs from Run", k)
		}
	}

	s.Reset()
	if s.Generation() != 0 || !s.Current().Equal(g) {
		t.Fatal("Reset did not restore the initial grid")
	}
}

func TestStepperKeepsStateOnError(t *testing.T) {
	flaky, err := rule.Moore("flaky", rule.Func(func(center uint8, _ int, _ rule.Window, tm int) uint8 {
		if tm == 1 {
			return 7
		}
		return 1 - center
	}))
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStepper(newGrid(t, 3, 3, core.BoundaryZero), flaky)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	before := s.Current().Clone()
	if err := s.Advance(); !errors.Is(err, ErrInvalidOutput) {
		t.Fatalf("Advance err = %v, want ErrInvalidOutput", err)
	}
	if s.Generation() != 1 || !s.Current().Equal(before) {
		t.Fatal("failed Advance changed the current generation")
	}
}
