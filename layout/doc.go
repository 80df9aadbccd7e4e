// Package layout parses textual keyboard diagrams into coordinate tables.
//
// What:
//
//   - Definition bundles a named ASCII diagram with its Geometry tag.
//   - Parse derives an integer (X, Y) Position for every token in a diagram,
//     reversing the visual row stagger of Slanted layouts.
//   - Builtin ships the four canonical layouts: qwerty, dvorak, keypad,
//     mac_keypad.
//
// Why:
//
//   - Password-strength scoring: adjacency graphs built over these tables
//     detect keyboard-walk patterns (qwerty, asdf, 8520).
//   - Diagrams are the single source of truth for key placement; coordinates
//     are always derived, never hand-maintained.
//
// Complexity:
//
//   - Parse: O(len(diagram)) time, O(#tokens) memory.
//
// Errors:
//
//   - ErrEmptyDiagram: diagram contains no tokens.
//   - ErrTokenWidth: tokens of differing widths within one diagram.
//   - ErrColumnAlignment: a token's offset violates the diagram's unit width.
//   - ErrNonASCII: diagram contains non-ASCII bytes.
//
// All errors are fatal for the diagram that raised them; Parse never returns
// a partial table. See adjacency/ for graph construction over the result.
package layout
