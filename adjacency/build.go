// Package adjacency builds direction-ordered adjacency graphs from parsed
// keyboard layouts. Given a coordinate table and a geometry it resolves, for
// every character of every key, the characters physically adjacent to it in
// a fixed clockwise order.
package adjacency

import (
	"github.com/katalvlaran/keywalk/layout"
)

// neighborOffsets returns the clockwise neighbor coordinates of p under geom,
// starting at the left neighbor. Slanted rows shift right as they descend,
// so only near-diagonal keys count as adjacent (six slots); Aligned rows are
// stacked vertically and yield the full octagonal ring (eight slots).
// Complexity: O(1).
func neighborOffsets(geom layout.Geometry, p layout.Position) []layout.Position {
	x, y := p.X, p.Y
	if geom == layout.Slanted {
		return []layout.Position{
			{X: x - 1, Y: y},     // SlantedLeft
			{X: x, Y: y - 1},     // SlantedTop
			{X: x + 1, Y: y - 1}, // SlantedTopRight
			{X: x + 1, Y: y},     // SlantedRight
			{X: x, Y: y + 1},     // SlantedBottom
			{X: x - 1, Y: y + 1}, // SlantedBottomLeft
		}
	}

	return []layout.Position{
		{X: x - 1, Y: y},     // AlignedLeft
		{X: x - 1, Y: y - 1}, // AlignedTopLeft
		{X: x, Y: y - 1},     // AlignedTop
		{X: x + 1, Y: y - 1}, // AlignedTopRight
		{X: x + 1, Y: y},     // AlignedRight
		{X: x + 1, Y: y + 1}, // AlignedBottomRight
		{X: x, Y: y + 1},     // AlignedBottom
		{X: x - 1, Y: y + 1}, // AlignedBottomLeft
	}
}

// Build computes the adjacency Graph of a coordinate table under geom.
// Both characters of a token become independent graph keys; a neighbor entry
// always resolves at the same token index as the key itself, so unshifted
// neighbors map to unshifted keys and shifted to shifted. Missing neighbors
// (layout edges) become NoNeighbor so every list has geom.NeighborCount()
// entries and list position encodes direction.
//
// Build cannot fail on a Table produced by layout.Parse: every lookup is a
// present-or-marker check.
// Complexity: O(#keys × tokenWidth × neighborCount) time and memory.
func Build(table layout.Table, geom layout.Geometry) Graph {
	graph := make(Graph, 2*len(table))
	for pos, token := range table {
		coords := neighborOffsets(geom, pos)
		for i, char := range []byte(token) {
			adjacent := make([]rune, 0, len(coords))
			for _, coord := range coords {
				if neighbor, ok := table[coord]; ok {
					adjacent = append(adjacent, rune(neighbor[i]))
				} else {
					adjacent = append(adjacent, NoNeighbor)
				}
			}
			graph[rune(char)] = adjacent
		}
	}

	return graph
}

// Size reports the number of distinct characters in the graph, i.e. the
// starting-position count used downstream as a combinatorial factor.
func (g Graph) Size() int {
	return len(g)
}

// Degree reports the count of real (non-marker) neighbors of c,
// or 0 if c is not in the graph.
func (g Graph) Degree(c rune) int {
	degree := 0
	for _, neighbor := range g[c] {
		if neighbor != NoNeighbor {
			degree++
		}
	}

	return degree
}

// Neighbors returns a copy of c's ordered adjacency list, or nil if c is
// not in the graph. The copy keeps the underlying graph immutable.
func (g Graph) Neighbors(c rune) []rune {
	adjacent, ok := g[c]
	if !ok {
		return nil
	}
	out := make([]rune, len(adjacent))
	copy(out, adjacent)

	return out
}

// AverageDegree reports the mean number of real neighbors over all
// characters: on qwerty, g has degree 6 (ftyhbv) while \ has degree 1.
// Returns 0 for an empty graph.
func (g Graph) AverageDegree() float64 {
	if len(g) == 0 {
		return 0
	}
	total := 0
	for c := range g {
		total += g.Degree(c)
	}

	return float64(total) / float64(len(g))
}
