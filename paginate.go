package mcbook

import "strings"

// Layout limits of a written book page.
const (
	BookWidth  = 114 // pixels per line
	BookHeight = 14  // lines per page
)

// Cursor is the layout position while a document is paginated. Line and
// Page are 1-based.
type Cursor struct {
	Page   int
	Line   int
	Pixels int
}

func (c Cursor) atPageStart() bool {
	return c.Line == 1 && c.Pixels == 0
}

// Body is the paginated content of one book, without start and end
// fragments.
type Body struct {
	Text  string
	Pages int
}

// Paginate lays text out into book bodies. One body is produced unless a page
// limit is configured with WithMaxPages.
func Paginate(text string, tpl Templates, opts ...Option) []Body {
	cfg := newConfig(opts)
	return paginate(text, tpl, cfg, newDiagnostics(cfg.log))
}

type paginator struct {
	tpl        Templates
	newline    string
	pageEnd    string
	maxPages   int
	spaceWidth int
	glyphs     glyphBuilder
	cur        Cursor
	body       strings.Builder
	bodies     []Body
}

func paginate(text string, tpl Templates, cfg config, diag *diagnostics) []Body {
	p := &paginator{
		tpl:        tpl,
		newline:    tpl.EscapedNewline(),
		pageEnd:    cfg.pageEnd,
		maxPages:   cfg.maxPages,
		spaceWidth: cfg.widths.Width(' ') + 1,
		glyphs: glyphBuilder{
			widths:  cfg.widths,
			escape:  tpl.Escape,
			unknown: diag.unmapped,
		},
		cur: Cursor{Page: 1, Line: 1},
	}
	for tok := range Tokens(text) {
		p.place(tok)
	}
	// A page cap reached by the final break leaves nothing for a
	// continuation book.
	if len(p.bodies) == 0 || p.body.Len() > 0 {
		p.finishBook()
	}
	return p.bodies
}

func (p *paginator) place(tok string) {
	if tok == p.pageEnd {
		p.newPage()
		return
	}
	g := p.glyphs.build(tok, p.cur.atPageStart())
	render, width := g.Render, g.Width

	if p.cur.Pixels+width > BookWidth {
		if width > BookWidth {
			p.split(g)
			render, width = "", 0
		}
		p.breakLine()
	}

	if render == p.newline {
		if p.cur.Line == BookHeight {
			p.newPage()
			return
		}
		p.breakLine()
	}

	if p.cur.Line > BookHeight {
		p.newPage()
	}

	p.body.WriteString(render)
	p.cur.Pixels += width
	if isSeparated(tok) {
		p.body.WriteByte(' ')
		p.cur.Pixels += p.spaceWidth
	}
}

// split writes a glyph wider than a whole line unit by unit, wrapping lines
// and pages as it goes.
func (p *paginator) split(g Glyph) {
	for _, u := range g.Units {
		if p.cur.Pixels+u.Width > BookWidth && p.cur.Pixels > 0 {
			p.breakLine()
			if p.cur.Line > BookHeight {
				p.newPage()
			}
		}
		p.body.WriteString(u.Render)
		p.cur.Pixels += u.Width
	}
}

func (p *paginator) breakLine() {
	p.cur.Line++
	p.cur.Pixels = 0
}

func (p *paginator) newPage() {
	if p.maxPages > 0 && p.cur.Page >= p.maxPages {
		p.finishBook()
	} else {
		p.body.WriteString(p.tpl.NewPage)
		p.cur.Page++
	}
	p.cur.Line = 1
	p.cur.Pixels = 0
}

func (p *paginator) finishBook() {
	p.bodies = append(p.bodies, Body{Text: p.body.String(), Pages: p.cur.Page})
	p.body.Reset()
	p.cur.Page = 1
}
