package rule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownRule reports a rule name that is neither registered nor parseable.
var ErrUnknownRule = errors.New("rule: unknown rule")

// Factory constructs a Rule using an optional configuration map.
type Factory func(cfg map[string]string) (Rule, error)

var rules = map[string]Factory{}

// Register adds a rule factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[strings.ToLower(name)] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := rules[strings.ToLower(name)]
	return f, ok
}

// Names lists the registered rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse resolves a rule description: a Wolfram number ("110"), B/S notation
// ("B36/S23") or a registered name ("life").
func Parse(s string) (Rule, error) {
	return ParseWith(s, nil)
}

// ParseWith is Parse with options forwarded to registered factories.
func ParseWith(s string, cfg map[string]string) (Rule, error) {
	spec := strings.TrimSpace(s)
	if n, err := strconv.Atoi(spec); err == nil {
		return Elementary(n)
	}
	if strings.Contains(spec, "/") {
		ll, err := ParseLifeLike(spec)
		if err != nil {
			return Rule{}, err
		}
		return Moore(ll.String(), ll)
	}
	f, ok := Lookup(spec)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, s)
	}
	return f(cfg)
}

// ElementaryConfig holds options for the "elementary" factory.
type ElementaryConfig struct {
	Rule int
}

// DefaultElementaryConfig returns the default configuration.
func DefaultElementaryConfig() ElementaryConfig {
	return ElementaryConfig{Rule: 110}
}

// ElementaryFromMap populates an ElementaryConfig from a string map.
func ElementaryFromMap(cfg map[string]string) (ElementaryConfig, error) {
	c := DefaultElementaryConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["rule"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %q", ErrInvalidRuleNumber, v)
		}
		c.Rule = parsed
	}
	return c, nil
}

func registerElementary(name string, number int) {
	Register(name, func(map[string]string) (Rule, error) {
		r, err := Elementary(number)
		if err != nil {
			return Rule{}, err
		}
		r.name = name
		return r, nil
	})
}

func registerLifeLike(name, notation string) {
	ll := MustLifeLike(notation)
	Register(name, func(map[string]string) (Rule, error) {
		return Moore(name, ll)
	})
}

func init() {
	Register("elementary", func(cfg map[string]string) (Rule, error) {
		c, err := ElementaryFromMap(cfg)
		if err != nil {
			return Rule{}, err
		}
		return Elementary(c.Rule)
	})
	for _, n := range []int{22, 30, 54, 90, 110, 184, 250} {
		registerElementary("rule"+strconv.Itoa(n), n)
	}

	registerLifeLike("life", "B3/S23")
	registerLifeLike("highlife", "B36/S23")
	registerLifeLike("seeds", "B2/S")
	registerLifeLike("daynight", "B3678/S34678")
	registerLifeLike("replicator", "B1357/S1357")
}
