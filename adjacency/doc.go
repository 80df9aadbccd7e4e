// Package adjacency resolves parsed keyboard layouts into per-character
// adjacency graphs with positional direction encoding.
//
// What:
//
//   - Build turns a layout.Table into a Graph: character → clockwise neighbor
//     list, one slot per Direction, NoNeighbor at layout edges.
//   - Direction enumerates the slots per geometry (six Slanted, eight Aligned)
//     and knows its Opposite, which makes adjacency symmetry checkable.
//   - GraphSet bundles the four shipped graphs with the derived degree and
//     starting-position constants consumed by password-strength scoring.
//
// Why:
//
//   - Keyboard-walk detection: a walk is a path through this graph, so the
//     scorer needs uniform, direction-stable lists to enumerate turns.
//   - Average degree approximates the branching factor an attacker's pattern
//     matcher should assume; graph size bounds the starting positions.
//
// Complexity:
//
//   - Build:    O(#keys × tokenWidth × neighborCount).
//   - BuildSet: O(Σ len(diagram)) over all definitions.
//
// Errors:
//
//   - Build itself cannot fail on a well-formed table; BuildSet propagates
//     layout parse errors (see layout/ sentinels) and never returns a
//     partial set.
package adjacency
