package rule

import (
	"errors"
	"slices"
	"testing"
)

func TestParseNumber(t *testing.T) {
	r, err := Parse("110")
	if err != nil {
		t.Fatal(err)
	}
	tbl, ok := r.Table()
	if !ok || tbl.Number() != 110 {
		t.Fatalf("Parse(110) = %v (elementary=%v)", r, ok)
	}
	if _, err := Parse("300"); !errors.Is(err, ErrInvalidRuleNumber) {
		t.Fatalf("Parse(300) err = %v, want ErrInvalidRuleNumber", err)
	}
}

func TestParseNotation(t *testing.T) {
	r, err := Parse("B36/S23")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Neighborhood(); !ok || r.Name() != "B36/S23" {
		t.Fatalf("Parse(B36/S23) = %v", r)
	}
	if _, err := Parse("B3/Q2"); !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("Parse(B3/Q2) err = %v, want ErrInvalidNotation", err)
	}
}

func TestParseRegisteredNames(t *testing.T) {
	for _, name := range []string{"life", "highlife", "seeds", "daynight", "replicator"} {
		r, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if r.Kind() != KindMoore || r.Name() != name {
			t.Fatalf("Parse(%q) = %q kind %v", name, r.Name(), r.Kind())
		}
	}
	r, err := Parse("Rule30")
	if err != nil {
		t.Fatal(err)
	}
	if tbl, ok := r.Table(); !ok || tbl.Number() != 30 || r.Name() != "rule30" {
		t.Fatalf("Parse(Rule30) = %q", r.Name())
	}
	if _, err := Parse("nonesuch"); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("Parse(nonesuch) err = %v, want ErrUnknownRule", err)
	}
}

func TestElementaryFactoryOptions(t *testing.T) {
	r, err := ParseWith("elementary", map[string]string{"rule": "90"})
	if err != nil {
		t.Fatal(err)
	}
	if tbl, _ := r.Table(); tbl.Number() != 90 {
		t.Fatalf("elementary rule option ignored: %v", r)
	}
	r, err = Parse("elementary")
	if err != nil {
		t.Fatal(err)
	}
	if tbl, _ := r.Table(); tbl.Number() != 110 {
		t.Fatalf("elementary default = %v, want rule 110", r)
	}
	if _, err := ParseWith("elementary", map[string]string{"rule": "x"}); !errors.Is(err, ErrInvalidRuleNumber) {
		t.Fatalf("bad rule option err = %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
	if !slices.Contains(names, "life") || !slices.Contains(names, "rule110") {
		t.Fatalf("Names() missing built-ins: %v", names)
	}
}
