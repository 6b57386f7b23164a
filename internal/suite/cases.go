// Package suite holds perft verification cases and runs them through the
// worker pool.
package suite

import (
	"fmt"
	"strings"

	"github.com/lgbarn/yauche-go/internal/errors"
)

// Case is a position reached by replaying Moves from the start, with the
// expected standard-rules perft count at Depth.
type Case struct {
	Name  string
	Moves []string
	Depth int
	Nodes uint64
}

// AllCasesName selects every built-in case.
const AllCasesName = "all"

// Published perft and divide figures for the starting position.
var cases = []Case{
	{Name: "initial-1", Depth: 1, Nodes: 20},
	{Name: "initial-2", Depth: 2, Nodes: 400},
	{Name: "initial-3", Depth: 3, Nodes: 8902},
	{Name: "initial-4", Depth: 4, Nodes: 197281},
	{Name: "e2e4-2", Moves: []string{"e2e4"}, Depth: 2, Nodes: 600},
	{Name: "e2e4-3", Moves: []string{"e2e4"}, Depth: 3, Nodes: 13160},
	{Name: "d2d4-3", Moves: []string{"d2d4"}, Depth: 3, Nodes: 12435},
	{Name: "b1c3-3", Moves: []string{"b1c3"}, Depth: 3, Nodes: 9755},
	{Name: "g1f3-2", Moves: []string{"g1f3"}, Depth: 2, Nodes: 440},
	{Name: "f2f3-2", Moves: []string{"f2f3"}, Depth: 2, Nodes: 380},
}

// Cases returns a copy of the built-in cases.
func Cases() []Case {
	out := make([]Case, len(cases))
	copy(out, cases)
	return out
}

// Select resolves case names, keeping the requested order. "all" expands to
// every case.
func Select(names []string) ([]Case, error) {
	var selected []Case
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == AllCasesName {
			selected = append(selected, Cases()...)
			continue
		}
		c, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, errors.ErrUnknownSuiteCase)
		}
		selected = append(selected, c)
	}
	return selected, nil
}

func lookup(name string) (Case, bool) {
	for _, c := range cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}
