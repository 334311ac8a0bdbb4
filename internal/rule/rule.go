package rule

import (
	"errors"
	"fmt"
)

// ErrNilRule reports a Moore rule constructed without a Neighborhood.
var ErrNilRule = errors.New("rule: nil neighborhood")

// Kind distinguishes the two rule variants.
type Kind uint8

const (
	// KindElementary is a 1D lookup-table rule.
	KindElementary Kind = iota + 1
	// KindMoore is a 2D rule over the 3x3 Moore neighbourhood.
	KindMoore
)

func (k Kind) String() string {
	switch k {
	case KindElementary:
		return "elementary"
	case KindMoore:
		return "moore"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Rule is the transition function handed to the evolver: either an
// elementary lookup table or a Moore neighbourhood rule. The zero Rule is
// invalid.
type Rule struct {
	kind  Kind
	name  string
	table Table
	hood  Neighborhood
}

// Elementary builds a rule from a Wolfram rule number.
func Elementary(number int) (Rule, error) {
	t, err := NewTable(number)
	if err != nil {
		return Rule{}, err
	}
	return FromTable(t), nil
}

// FromTable wraps an existing lookup table.
func FromTable(t Table) Rule {
	return Rule{kind: KindElementary, name: t.String(), table: t}
}

// Moore builds a 2D rule from a Neighborhood. name is used for display only.
func Moore(name string, n Neighborhood) (Rule, error) {
	if n == nil {
		return Rule{}, ErrNilRule
	}
	if name == "" {
		if s, ok := n.(fmt.Stringer); ok {
			name = s.String()
		} else {
			name = "custom"
		}
	}
	return Rule{kind: KindMoore, name: name, hood: n}, nil
}

// Kind reports the rule variant; zero for an uninitialised Rule.
func (r Rule) Kind() Kind { return r.kind }

// Name returns a human-readable description.
func (r Rule) Name() string { return r.name }

// Table returns the lookup table of an elementary rule.
func (r Rule) Table() (Table, bool) { return r.table, r.kind == KindElementary }

// Neighborhood returns the function of a Moore rule.
func (r Rule) Neighborhood() (Neighborhood, bool) { return r.hood, r.kind == KindMoore }

// Valid reports whether the rule was built by one of the constructors.
func (r Rule) Valid() bool {
	switch r.kind {
	case KindElementary:
		return true
	case KindMoore:
		return r.hood != nil
	}
	return false
}

func (r Rule) String() string { return r.name }
