package main

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/katalvlaran/keywalk/adjacency"
)

// encodeJSON marshals the graph set with sorted keys and stable indentation.
// Adjacency lists serialize as arrays of single-character strings with null
// for NoNeighbor slots, preserving the clockwise direction order.
func encodeJSON(set *adjacency.GraphSet) ([]byte, error) {
	graphs := make(map[string]any, len(set.Graphs))
	for name, graph := range set.Graphs {
		entries := make(map[string]any, graph.Size())
		for c := range graph {
			adjacent := graph.Neighbors(c)
			row := make([]any, len(adjacent))
			for i, neighbor := range adjacent {
				if neighbor == adjacency.NoNeighbor {
					continue // leave the slot nil → null
				}
				row[i] = string(neighbor)
			}
			entries[string(c)] = row
		}
		graphs[name] = entries
	}

	payload := map[string]any{
		"graphs":                      graphs,
		"keyboard_average_degree":     set.KeyboardAverageDegree,
		"keypad_average_degree":       set.KeypadAverageDegree,
		"keyboard_starting_positions": set.KeyboardStartingPositions,
		"keypad_starting_positions":   set.KeypadStartingPositions,
	}

	return oj.Marshal(payload, &ojg.Options{Sort: true, Indent: 2})
}

// encodeGo renders the graph set as a generated Go source file: one
// map[rune][]rune literal per layout plus the four derived constants.
// Keys are sorted so regeneration is byte-stable.
func encodeGo(set *adjacency.GraphSet, pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by keywalkgen. DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintln(&buf, "// NoNeighbor marks a direction slot with no key.")
	fmt.Fprintln(&buf, "const NoNeighbor rune = 0")
	fmt.Fprintln(&buf)

	names := make([]string, 0, len(set.Graphs))
	for name := range set.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		graph := set.Graphs[name]
		chars := make([]rune, 0, graph.Size())
		for c := range graph {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		fmt.Fprintf(&buf, "// %s maps each character to its clockwise neighbors, starting at the left.\n", identifier(name))
		fmt.Fprintf(&buf, "var %s = map[rune][]rune{\n", identifier(name))
		for _, c := range chars {
			fmt.Fprintf(&buf, "\t%s: {", strconv.QuoteRune(c))
			for i, neighbor := range graph.Neighbors(c) {
				if i > 0 {
					buf.WriteString(", ")
				}
				if neighbor == adjacency.NoNeighbor {
					buf.WriteString("NoNeighbor")
					continue
				}
				buf.WriteString(strconv.QuoteRune(neighbor))
			}
			fmt.Fprintln(&buf, "},")
		}
		fmt.Fprintln(&buf, "}")
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "// Derived constants consumed by keyboard-walk scoring.")
	fmt.Fprintln(&buf, "const (")
	fmt.Fprintf(&buf, "\tKeyboardAverageDegree     = %v\n", set.KeyboardAverageDegree)
	fmt.Fprintf(&buf, "\tKeypadAverageDegree       = %v\n", set.KeypadAverageDegree)
	fmt.Fprintf(&buf, "\tKeyboardStartingPositions = %d\n", set.KeyboardStartingPositions)
	fmt.Fprintf(&buf, "\tKeypadStartingPositions   = %d\n", set.KeypadStartingPositions)
	fmt.Fprintln(&buf, ")")

	return buf.Bytes(), nil
}

// identifier turns a layout name into an exported Go identifier:
// "mac_keypad" → "MacKeypad".
func identifier(name string) string {
	var out []rune
	upper := true
	for _, c := range name {
		if c == '_' || c == '-' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		upper = false
		out = append(out, c)
	}

	return string(out)
}
