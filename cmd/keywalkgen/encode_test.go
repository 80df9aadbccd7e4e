package main

import (
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keywalk/adjacency"
)

// TestEncodeJSON_RoundTrip verifies that the JSON output preserves adjacency
// order exactly and carries the derived constants.
func TestEncodeJSON_RoundTrip(t *testing.T) {
	set, err := adjacency.BuildDefault()
	require.NoError(t, err)

	data, err := encodeJSON(set)
	require.NoError(t, err)

	parsed, err := oj.Parse(data)
	require.NoError(t, err)
	doc, ok := parsed.(map[string]any)
	require.True(t, ok, "top level must be an object")

	graphs, ok := doc["graphs"].(map[string]any)
	require.True(t, ok)
	require.Len(t, graphs, 4)

	qwerty, ok := graphs["qwerty"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"f", "t", "y", "h", "b", "v"}, qwerty["g"])
	// Backslash sits at the right edge of the top letter row: only [ above.
	assert.Equal(t, []any{"]", nil, nil, nil, nil, nil}, qwerty["\\"])

	assert.Equal(t, int64(94), doc["keyboard_starting_positions"])
	assert.Equal(t, int64(15), doc["keypad_starting_positions"])
	assert.InDelta(t, 4.595744680851064, doc["keyboard_average_degree"], 1e-12)
}

// TestEncodeGo_Shape pins the structural landmarks of the generated source:
// header, package clause, one var per layout, quoted adjacency rows, constants.
func TestEncodeGo_Shape(t *testing.T) {
	set, err := adjacency.BuildDefault()
	require.NoError(t, err)

	data, err := encodeGo(set, "adjacencydata")
	require.NoError(t, err)
	src := string(data)

	assert.True(t, strings.HasPrefix(src, "// Code generated by keywalkgen. DO NOT EDIT.\n"))
	assert.Contains(t, src, "package adjacencydata\n")
	for _, decl := range []string{"var Qwerty =", "var Dvorak =", "var Keypad =", "var MacKeypad ="} {
		assert.Contains(t, src, decl)
	}
	assert.Contains(t, src, "'g': {'f', 't', 'y', 'h', 'b', 'v'},")
	// The const block is emitted gofmt-aligned: every '=' pads to the
	// longest name, KeyboardStartingPositions.
	assert.Contains(t, src, "KeyboardAverageDegree     = 4.595744680851064")
	assert.Contains(t, src, "KeypadAverageDegree       = 5.066666666666666")
	assert.Contains(t, src, "KeyboardStartingPositions = 94")
	assert.Contains(t, src, "KeypadStartingPositions   = 15")
}

// TestIdentifier covers the snake-case to exported-identifier mapping.
func TestIdentifier(t *testing.T) {
	assert.Equal(t, "Qwerty", identifier("qwerty"))
	assert.Equal(t, "MacKeypad", identifier("mac_keypad"))
}
