package layout_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/keywalk/layout"
)

//----------------------------------------------------------------------------//
// Parse error tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects malformed diagrams with the
// matching sentinel and without producing a partial table.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		diagram string
		geom    layout.Geometry
		err     error
	}{
		{"Empty", "", layout.Aligned, layout.ErrEmptyDiagram},
		{"WhitespaceOnly", "  \n\t \n", layout.Aligned, layout.ErrEmptyDiagram},
		{"TokenWidthMismatch", "\naA b\n", layout.Aligned, layout.ErrTokenWidth},
		{"MisalignedColumn", "\n1 2\n 3\n", layout.Aligned, layout.ErrColumnAlignment},
		{"SlantBreaksAlignment", "\naA bB\naA bB\n", layout.Slanted, layout.ErrColumnAlignment},
		{"NonASCII", "\né ü\n", layout.Aligned, layout.ErrNonASCII},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := layout.Parse(tc.diagram, tc.geom)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.diagram, err, tc.err)
			}
			if table != nil {
				t.Errorf("Parse(%q) returned a partial table on error", tc.diagram)
			}
		})
	}
}

// TestParse_AlignedCoordinates checks exact keypad coordinates: aligned rows
// carry no slant, so X is the raw column divided by the unit width.
func TestParse_AlignedCoordinates(t *testing.T) {
	diagram := "\n  / * -\n7 8 9 +\n"
	table, err := layout.Parse(diagram, layout.Aligned)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := map[layout.Position]string{
		{X: 1, Y: 1}: "/",
		{X: 2, Y: 1}: "*",
		{X: 3, Y: 1}: "-",
		{X: 0, Y: 2}: "7",
		{X: 1, Y: 2}: "8",
		{X: 2, Y: 2}: "9",
		{X: 3, Y: 2}: "+",
	}
	if len(table) != len(want) {
		t.Fatalf("table size = %d; want %d", len(table), len(want))
	}
	for pos, tok := range want {
		if got := table[pos]; got != tok {
			t.Errorf("table[%v] = %q; want %q", pos, got, tok)
		}
	}
}

// TestParse_SlantedCoordinates checks that the per-row indentation of a
// slanted diagram is subtracted before deriving X.
func TestParse_SlantedCoordinates(t *testing.T) {
	diagram := "\n1! 2@ 3#\n    qQ wW\n     aA sS\n"
	table, err := layout.Parse(diagram, layout.Slanted)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := map[layout.Position]string{
		{X: 0, Y: 1}: "1!",
		{X: 1, Y: 1}: "2@",
		{X: 2, Y: 1}: "3#",
		{X: 1, Y: 2}: "qQ",
		{X: 2, Y: 2}: "wW",
		{X: 1, Y: 3}: "aA",
		{X: 2, Y: 3}: "sS",
	}
	if len(table) != len(want) {
		t.Fatalf("table size = %d; want %d", len(table), len(want))
	}
	for pos, tok := range want {
		if got := table[pos]; got != tok {
			t.Errorf("table[%v] = %q; want %q", pos, got, tok)
		}
	}
}

// TestParse_CarriageReturns verifies that a diagram with CRLF line endings
// parses identically to its LF form: the carriage return ends a token
// instead of becoming part of a key.
func TestParse_CarriageReturns(t *testing.T) {
	crlf := "\r\n1 2\r\n3 4\r\n"
	lf := "\n1 2\n3 4\n"

	got, err := layout.Parse(crlf, layout.Aligned)
	if err != nil {
		t.Fatalf("Parse(CRLF) error: %v", err)
	}
	want, err := layout.Parse(lf, layout.Aligned)
	if err != nil {
		t.Fatalf("Parse(LF) error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("CRLF table size = %d; want %d", len(got), len(want))
	}
	for pos, tok := range want {
		if g := got[pos]; g != tok {
			t.Errorf("CRLF table[%v] = %q; want %q", pos, g, tok)
		}
	}
}

//----------------------------------------------------------------------------//
// Builtin definition tests
//----------------------------------------------------------------------------//

// TestBuiltin_Definitions verifies the shipped layouts parse cleanly with the
// expected key counts and geometries.
func TestBuiltin_Definitions(t *testing.T) {
	want := map[string]struct {
		geom layout.Geometry
		keys int
	}{
		"qwerty":     {layout.Slanted, 47},
		"dvorak":     {layout.Slanted, 47},
		"keypad":     {layout.Aligned, 15},
		"mac_keypad": {layout.Aligned, 16},
	}

	defs := layout.Builtin()
	if len(defs) != len(want) {
		t.Fatalf("Builtin() returned %d definitions; want %d", len(defs), len(want))
	}
	for _, def := range defs {
		w, ok := want[def.Name]
		if !ok {
			t.Errorf("unexpected builtin layout %q", def.Name)
			continue
		}
		if def.Geometry != w.geom {
			t.Errorf("layout %q geometry = %v; want %v", def.Name, def.Geometry, w.geom)
		}
		table, err := def.Parse()
		if err != nil {
			t.Errorf("layout %q Parse error: %v", def.Name, err)
			continue
		}
		if len(table) != w.keys {
			t.Errorf("layout %q has %d keys; want %d", def.Name, len(table), w.keys)
		}
	}
}

// TestDefinition_Parse_NamesDiagram verifies that a Definition wraps parse
// failures with the layout name, keeping the sentinel reachable via errors.Is.
func TestDefinition_Parse_NamesDiagram(t *testing.T) {
	def := layout.Definition{Name: "broken", Diagram: "\naA b\n", Geometry: layout.Slanted}
	_, err := def.Parse()
	if !errors.Is(err, layout.ErrTokenWidth) {
		t.Fatalf("Parse error = %v; want ErrTokenWidth", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q does not identify the offending diagram", err)
	}
}

// TestGeometry_NeighborCount pins the per-geometry slot counts.
func TestGeometry_NeighborCount(t *testing.T) {
	if n := layout.Slanted.NeighborCount(); n != 6 {
		t.Errorf("Slanted.NeighborCount() = %d; want 6", n)
	}
	if n := layout.Aligned.NeighborCount(); n != 8 {
		t.Errorf("Aligned.NeighborCount() = %d; want 8", n)
	}
}
