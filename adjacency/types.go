// Package adjacency defines core types for the adjacency subpackage of
// github.com/katalvlaran/keywalk.
package adjacency

import (
	"github.com/katalvlaran/keywalk/layout"
)

// NoNeighbor marks a direction slot with no key at the graph's edge
// (e.g. the slot left of the leftmost key in a row).
const NoNeighbor rune = 0

// Direction indexes one slot of an adjacency list. Slots are clockwise,
// starting at the left neighbor; each Geometry has its own enumeration
// because Slanted rows touch only six keys while Aligned rows touch eight.
type Direction int

// Slanted directions: staggered rows shift right as they descend, so two
// keys touch the top edge (top, top-right) and two touch the bottom
// (bottom, bottom-left). On qwerty, g borders t and y above, b and v below.
const (
	SlantedLeft Direction = iota
	SlantedTop
	SlantedTopRight
	SlantedRight
	SlantedBottom
	SlantedBottomLeft
)

// Aligned directions: vertically stacked rows give the full octagonal ring.
const (
	AlignedLeft Direction = iota
	AlignedTopLeft
	AlignedTop
	AlignedTopRight
	AlignedRight
	AlignedBottomRight
	AlignedBottom
	AlignedBottomLeft
)

// Opposite returns the direction pointing back at d under geom:
// (d+3) mod 6 for Slanted, (d+4) mod 8 for Aligned. If key a sees key b at
// direction d, then b sees a at d.Opposite(geom).
func (d Direction) Opposite(geom layout.Geometry) Direction {
	n := geom.NeighborCount()

	return (d + Direction(n/2)) % Direction(n)
}

// Graph maps every single character of a layout (unshifted and shifted
// symbols alike) to its ordered neighbor list. Each list has exactly
// Geometry.NeighborCount entries; the entry at Direction i is the neighbor
// character in that direction, or NoNeighbor at the layout's edge.
// A Graph is immutable once built.
type Graph map[rune][]rune
