// Package layout parses ASCII keyboard diagrams into coordinate tables.
//
// A diagram is multi-line text whose rows contain whitespace-separated
// tokens. Rows of a Slanted layout are indented one extra column per row to
// depict the physical stagger of keyboard rows; Parse reverses that
// indentation when deriving key coordinates.
package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse converts a diagram into a coordinate Table under the given geometry.
// It is a pure, total function: any malformed diagram aborts the whole parse
// and no partial table is returned.
//
// Coordinate derivation, per row y (0-indexed, counting every raw line):
//
//	slant  = y-1 for Slanted (rows are drawn one column further right each), else 0
//	xUnit  = tokenWidth + 1 (one separator column trails every key)
//	x, rem = divmod(col - slant, xUnit); rem must be 0
//
// Returns ErrEmptyDiagram, ErrNonASCII, ErrTokenWidth or ErrColumnAlignment,
// each wrapped with the offending token and row.
// Complexity: O(len(diagram)) time, O(#tokens) memory.
func Parse(diagram string, geom Geometry) (Table, error) {
	if strings.IndexFunc(diagram, func(r rune) bool { return r >= utf8.RuneSelf }) >= 0 {
		return nil, fmt.Errorf("non-ASCII rune in diagram: %w", ErrNonASCII)
	}
	tokens := strings.Fields(diagram)
	if len(tokens) == 0 {
		return nil, ErrEmptyDiagram
	}
	// The first token fixes the width every other token must match.
	width := len(tokens[0])
	for _, tok := range tokens {
		if len(tok) != width {
			return nil, fmt.Errorf("token %q has width %d, want %d: %w", tok, len(tok), width, ErrTokenWidth)
		}
	}
	xUnit := width + 1

	table := make(Table, len(tokens))
	for y, line := range strings.Split(diagram, "\n") {
		slant := 0
		if geom == Slanted {
			slant = y - 1
		}
		for _, rt := range rowTokens(line) {
			x, rem := (rt.col-slant)/xUnit, (rt.col-slant)%xUnit
			if rem != 0 {
				return nil, fmt.Errorf("token %q at row %d, column %d: offset %d is not a multiple of %d: %w",
					rt.tok, y, rt.col, rt.col-slant, xUnit, ErrColumnAlignment)
			}
			table[Position{X: x, Y: y}] = rt.tok
		}
	}

	return table, nil
}

// Parse parses the definition's diagram, wrapping any error with the layout
// name so failures identify the offending diagram.
func (d Definition) Parse() (Table, error) {
	table, err := Parse(d.Diagram, d.Geometry)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", d.Name, err)
	}

	return table, nil
}

// rowToken is one token of a raw diagram row plus the character offset
// where it starts.
type rowToken struct {
	col int
	tok string
}

// rowTokens scans one raw diagram row left to right and returns its tokens
// in order of appearance. Scanning by offset keeps a row with repeated
// tokens unambiguous. Any ASCII whitespace ends a token, so a stray
// carriage return from a CRLF diagram never becomes part of a key.
func rowTokens(line string) []rowToken {
	var found []rowToken
	start := -1 // start column of the token being scanned, -1 between tokens
	for i := 0; i < len(line); i++ {
		switch {
		case isSpace(line[i]):
			if start >= 0 {
				found = append(found, rowToken{col: start, tok: line[start:i]})
				start = -1
			}
		case start < 0:
			start = i
		}
	}
	if start >= 0 {
		found = append(found, rowToken{col: start, tok: line[start:]})
	}

	return found
}

// isSpace reports whether b is ASCII whitespace; diagrams are ASCII by the
// time rowTokens runs, so this matches strings.Fields' token boundaries.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}

	return false
}
