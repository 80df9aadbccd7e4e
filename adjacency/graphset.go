package adjacency

import (
	"github.com/katalvlaran/keywalk/layout"
)

// Builtin layout names whose graphs feed the derived statistics.
const (
	keyboardStatsLayout = "qwerty"
	keypadStatsLayout   = "keypad"
)

// GraphSet holds the named graphs of one run plus the derived constants the
// downstream scorer reads. Degrees and starting positions are computed from
// the qwerty and keypad graphs; dvorak and mac_keypad differ slightly, but
// one representative per geometry family is close enough for scoring.
// A GraphSet is read-only once built.
type GraphSet struct {
	// Graphs maps layout name to its adjacency graph.
	Graphs map[string]Graph

	// KeyboardAverageDegree is the mean key degree of the slanted family.
	KeyboardAverageDegree float64
	// KeypadAverageDegree is the mean key degree of the aligned family.
	KeypadAverageDegree float64
	// KeyboardStartingPositions counts the distinct characters of the
	// slanted family's representative graph.
	KeyboardStartingPositions int
	// KeypadStartingPositions counts the distinct characters of the
	// aligned family's representative graph.
	KeypadStartingPositions int
}

// BuildSet parses and builds every definition, then derives the family
// statistics. Any malformed diagram aborts the whole set: no partial
// GraphSet is ever returned.
// Complexity: O(Σ len(diagram)) time.
func BuildSet(defs []layout.Definition) (*GraphSet, error) {
	set := &GraphSet{Graphs: make(map[string]Graph, len(defs))}
	for _, def := range defs {
		table, err := def.Parse()
		if err != nil {
			return nil, err
		}
		set.Graphs[def.Name] = Build(table, def.Geometry)
	}
	if g, ok := set.Graphs[keyboardStatsLayout]; ok {
		set.KeyboardAverageDegree = g.AverageDegree()
		set.KeyboardStartingPositions = g.Size()
	}
	if g, ok := set.Graphs[keypadStatsLayout]; ok {
		set.KeypadAverageDegree = g.AverageDegree()
		set.KeypadStartingPositions = g.Size()
	}

	return set, nil
}

// BuildDefault builds the GraphSet of the four shipped layouts
// (qwerty, dvorak, keypad, mac_keypad).
func BuildDefault() (*GraphSet, error) {
	return BuildSet(layout.Builtin())
}
