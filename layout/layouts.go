package layout

// Shipped layout diagrams. Each line of a Slanted diagram is drawn one
// column further right than the line above, mirroring the physical stagger
// of keyboard rows; Aligned diagrams stack rows vertically. Tokens pack a
// key's unshifted and shifted characters ("aA", "1!"); keypad keys carry a
// single character. The leading newline is part of the stagger convention:
// row 0 is the empty line, so the first key row parses with slant 0.

const qwertyDiagram = `
` + "`" + `~ 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) -_ =+
    qQ wW eE rR tT yY uU iI oO pP [{ ]} \|
     aA sS dD fF gG hH jJ kK lL ;: '"
      zZ xX cC vV bB nN mM ,< .> /?
`

const dvorakDiagram = `
` + "`" + `~ 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) [{ ]}
    '" ,< .> pP yY fF gG cC rR lL /? =+ \|
     aA oO eE uU iI dD hH tT nN sS -_
      ;: qQ jJ kK xX bB mM wW vV zZ
`

const keypadDiagram = `
  / * -
7 8 9 +
4 5 6
1 2 3
  0 .
`

const macKeypadDiagram = `
  = / *
7 8 9 -
4 5 6 +
1 2 3
  0 .
`

// Builtin returns the four shipped layout definitions: two staggered
// keyboards (qwerty, dvorak) and two numeric keypads (keypad, mac_keypad).
// The returned slice is a fresh copy; callers may reorder it freely.
func Builtin() []Definition {
	return []Definition{
		{Name: "qwerty", Diagram: qwertyDiagram, Geometry: Slanted},
		{Name: "dvorak", Diagram: dvorakDiagram, Geometry: Slanted},
		{Name: "keypad", Diagram: keypadDiagram, Geometry: Aligned},
		{Name: "mac_keypad", Diagram: macKeypadDiagram, Geometry: Aligned},
	}
}
