package core

import "testing"

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Run", Params: []Parameter{{Key: "rule", Value: "life"}}},
		{Name: "State", Params: []Parameter{{Key: "generation", Value: "4"}}},
	}}
	if p, ok := s.Lookup("generation"); !ok || p.Value != "4" {
		t.Fatalf("Lookup(generation) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
