package mcbook

// DefaultCharWidth is the pixel width assumed for characters missing from a
// WidthTable.
const DefaultCharWidth = 9

// WidthTable maps a character to its rendered pixel width, excluding the one
// pixel of spacing that follows every character.
type WidthTable map[rune]int

// Lookup returns the width of r and whether r was present in the table.
// Missing characters report DefaultCharWidth.
func (t WidthTable) Lookup(r rune) (int, bool) {
	if w, ok := t[r]; ok {
		return w, true
	}
	return DefaultCharWidth, false
}

// Width returns the width of r, falling back to DefaultCharWidth.
func (t WidthTable) Width(r rune) int {
	w, _ := t.Lookup(r)
	return w
}

// DefaultWidthTable returns the pixel widths of the default game font for
// printable ASCII plus a zero-width newline. The returned map is a fresh copy.
func DefaultWidthTable() WidthTable {
	t := make(WidthTable, len(asciiWidths)+1)
	for i, w := range asciiWidths {
		t[rune(' '+i)] = w
	}
	t['\n'] = 0
	return t
}

// asciiWidths holds widths for ' ' (0x20) through '~' (0x7E).
var asciiWidths = [...]int{
	3, 1, 3, 5, 5, 5, 5, 1, 3, 3, 3, 5, 1, 5, 1, 5, // ' ' .. '/'
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 1, 1, 4, 5, 4, 5, // '0' .. '?'
	6, 5, 5, 5, 5, 5, 5, 5, 5, 3, 5, 5, 5, 5, 5, 5, // '@' .. 'O'
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3, 5, 3, 5, 5, // 'P' .. '_'
	2, 5, 5, 5, 5, 5, 4, 5, 5, 1, 5, 4, 2, 5, 5, 5, // '`' .. 'o'
	5, 5, 5, 5, 3, 5, 5, 5, 5, 5, 5, 3, 1, 3, 6, //    'p' .. '~'
}
