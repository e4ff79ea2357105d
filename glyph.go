package mcbook

import "strings"

// Unit is the rendering of one source character. Its Render is never split
// across a line or page break, so escape sequences stay intact.
type Unit struct {
	Render string
	Width  int
}

// Glyph is a token's escaped rendering and its total pixel width.
type Glyph struct {
	Units  []Unit
	Render string
	Width  int
}

// glyphBuilder escapes tokens for one set of templates and width table.
type glyphBuilder struct {
	widths  WidthTable
	escape  string
	unknown func(r rune, token string)
	buf     strings.Builder
}

// build renders tok. atPageStart suppresses a leading newline so a page
// never opens with a blank line.
func (g *glyphBuilder) build(tok string, atPageStart bool) Glyph {
	g.buf.Reset()
	var glyph Glyph
	first := true
	for _, r := range tok {
		if first && atPageStart && r == '\n' {
			first = false
			continue
		}
		first = false
		unit := Unit{Render: g.escapeRune(r), Width: g.width(r, tok) + 1}
		glyph.Units = append(glyph.Units, unit)
		glyph.Width += unit.Width
		g.buf.WriteString(unit.Render)
	}
	glyph.Render = g.buf.String()
	return glyph
}

func (g *glyphBuilder) escapeRune(r rune) string {
	switch r {
	case '\\':
		return g.escape + g.escape
	case '"':
		return g.escape + `"`
	case '\'':
		return `\'`
	case '\n':
		return g.escape + "n"
	default:
		return string(r)
	}
}

func (g *glyphBuilder) width(r rune, tok string) int {
	w, ok := g.widths.Lookup(r)
	if !ok && g.unknown != nil {
		g.unknown(r, tok)
	}
	return w
}
