// Package keywalk turns textual keyboard-layout diagrams into
// direction-ordered adjacency graphs for keyboard-walk detection.
//
// 🚀 What is keywalk?
//
//	A small, deterministic library that converts an ASCII diagram of a
//	physical keyboard (or numeric keypad) into a graph mapping every
//	printable character to its physical neighbors, in a fixed clockwise
//	order:
//		• layout/    — diagram parsing: rows of tokens → integer key coordinates
//		• adjacency/ — neighbor resolution: coordinates → per-character graphs
//		• cmd/keywalkgen — generator writing the shipped graphs to JSON or Go source
//
// ✨ Why keywalk?
//
//   - Password-strength estimators use adjacency graphs to spot low-entropy
//     "walks" such as qwerty, asdf or 8520; this module builds those graphs.
//   - Two tiling geometries cover real hardware: Slanted (staggered keyboard
//     rows, six neighbors) and Aligned (vertically stacked keypad rows, eight).
//   - Pure Go core — no I/O, no goroutines, fully deterministic output.
//
// Quick ASCII example (the neighborhood of 'g' on qwerty):
//
//	 rR tT yY uU
//	  fF gG hH
//	   cC vV bB nN
//
//	g → [f t y h b v]   (clockwise, starting at the left neighbor)
//
// Dive into layout/ for the four shipped layout definitions and adjacency/
// for graph construction and the derived degree statistics.
//
//	go get github.com/katalvlaran/keywalk
package keywalk
