package pattern

import (
	"fmt"
	"sort"
	"strings"
)

var library = map[string]Pattern{}

func register(p Pattern) { library[p.Name] = p }

func init() {
	register(MustParse("glider", `
..O
O.O
.OO`[1:]))
	register(MustParse("blinker", "OOO"))
	register(MustParse("block", "OO\nOO"))
	register(MustParse("beehive", `
.OO.
O..O
.OO.`[1:]))
	register(MustParse("toad", `
.OOO
OOO.`[1:]))
	register(MustParse("beacon", `
OO..
OO..
..OO
..OO`[1:]))
	register(MustParse("lwss", `
.OOOO
O...O
....O
O..O.`[1:]))
	register(MustParse("rpentomino", `
.OO
OO.
.O.`[1:]))
	// Seed rows for the 1D space-time view.
	register(MustParse("ramp", `
.......OOO....OOO...
......OO..O..OO..O..
.....OO....OO....OO.
....OOO..OOO..OOO..O
...OO...O...O...OO..
..OOOO.O.O.O.O.OOOO.`[1:]))
}

// Lookup returns the library pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := library[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	p, _ = New(p.Name, p.Cells)
	return p, nil
}

// Names lists the library patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for n := range library {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
