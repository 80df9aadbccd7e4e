// Package layout defines core types and sentinel errors
// for the layout subpackage of github.com/katalvlaran/keywalk.
package layout

import (
	"errors"
)

// Sentinel errors for layout parsing.
var (
	// ErrEmptyDiagram indicates a diagram with no tokens at all.
	ErrEmptyDiagram = errors.New("layout: diagram must contain at least one token")
	// ErrTokenWidth indicates tokens of differing character widths within one diagram.
	ErrTokenWidth = errors.New("layout: all tokens must have the same width")
	// ErrColumnAlignment indicates a token whose column offset is not a multiple
	// of the diagram's horizontal unit (token width plus one separator column).
	ErrColumnAlignment = errors.New("layout: token column offset does not match unit width")
	// ErrNonASCII indicates a diagram containing non-ASCII bytes; column
	// addressing is only defined for fixed-width ASCII text.
	ErrNonASCII = errors.New("layout: diagram must be ASCII")
)

// Geometry selects the tiling rule of a physical layout: Slanted rows
// (staggered keyboard, six neighbors) or Aligned rows (keypad, eight neighbors).
type Geometry int

const (
	// Slanted models staggered keyboard rows, each drawn one column further
	// right than the row above. Keys have six neighbors.
	Slanted Geometry = iota
	// Aligned models vertically stacked keypad rows. Keys have eight neighbors.
	Aligned
)

// NeighborCount reports how many neighbor slots every key has under g:
// 6 for Slanted, 8 for Aligned.
func (g Geometry) NeighborCount() int {
	if g == Slanted {
		return 6
	}

	return 8
}

// String returns the geometry name for diagnostics.
func (g Geometry) String() string {
	if g == Slanted {
		return "Slanted"
	}

	return "Aligned"
}

// Position is an integer key coordinate within a parsed diagram.
// Y is the diagram row index; X is the row-local key index derived from
// the token's character offset.
type Position struct {
	X, Y int
}

// Table maps each occupied Position to the token printed there
// (a key's unshifted and shifted characters, e.g. "aA" or "1!").
// A Table is built once by Parse and must be treated as read-only.
type Table map[Position]string

// Definition is an immutable layout record: a named diagram plus the
// geometry that governs both its stagger convention and its adjacency.
type Definition struct {
	Name     string
	Diagram  string
	Geometry Geometry
}
