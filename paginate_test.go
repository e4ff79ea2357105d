package mcbook

import (
	"math/rand/v2"
	"strings"
	"testing"
)

const testPageBreak = "<PAGE>"

func testTemplates(escape string) Templates {
	return Templates{Start: "[", NewPage: testPageBreak, End: "]", Escape: escape}
}

func paginateOne(t *testing.T, text string, tpl Templates, opts ...Option) Body {
	t.Helper()
	bodies := Paginate(text, tpl, opts...)
	if len(bodies) != 1 {
		t.Fatalf("expected 1 body, got %d", len(bodies))
	}
	return bodies[0]
}

func words(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func TestPaginateSingleLine(t *testing.T) {
	body := paginateOne(t, "hello world", testTemplates(`\`))
	if body.Text != "hello world " {
		t.Fatalf("unexpected body %q", body.Text)
	}
	if body.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", body.Pages)
	}
}

func TestPaginateFillsPageBeforeBreaking(t *testing.T) {
	// "aaaaa" is 30px plus a 4px separator: three words per line, 42 per page.
	tpl := testTemplates(`\`)
	full := paginateOne(t, words("aaaaa", 42), tpl)
	if strings.Contains(full.Text, testPageBreak) {
		t.Fatalf("42 words must fit one page: %q", full.Text)
	}

	over := paginateOne(t, words("aaaaa", 43), tpl)
	want := strings.Repeat("aaaaa ", 42) + testPageBreak + "aaaaa "
	if over.Text != want {
		t.Fatalf("unexpected body\n got %q\nwant %q", over.Text, want)
	}
	if over.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", over.Pages)
	}
}

func TestPaginatePageEndForcesBreak(t *testing.T) {
	body := paginateOne(t, "a {PAGE_END} b", testTemplates(`\`))
	if body.Text != "a "+testPageBreak+"b " {
		t.Fatalf("unexpected body %q", body.Text)
	}
	if strings.Contains(body.Text, PageEnd) {
		t.Fatalf("page end marker rendered: %q", body.Text)
	}

	body = paginateOne(t, "a\n{PAGE_END}\nb", testTemplates(`\`))
	if body.Text != `a \n`+testPageBreak+"b " {
		t.Fatalf("newline after a page end must be suppressed: %q", body.Text)
	}
}

func TestPaginateCustomPageMarker(t *testing.T) {
	body := paginateOne(t, "a ---- b {PAGE_END}", testTemplates(`\`), WithMarkers("----", ""))
	if body.Text != "a "+testPageBreak+"b {PAGE_END} " {
		t.Fatalf("unexpected body %q", body.Text)
	}
}

func TestPaginateNewlines(t *testing.T) {
	body := paginateOne(t, "a\nb", testTemplates(`\`))
	if body.Text != `a \nb ` {
		t.Fatalf("unexpected body %q", body.Text)
	}
	body = paginateOne(t, "a\nb", testTemplates(`\\`))
	if body.Text != `a \\nb ` {
		t.Fatalf("unexpected legacy body %q", body.Text)
	}
	body = paginateOne(t, "\n\nfirst", testTemplates(`\`))
	if body.Text != "first " {
		t.Fatalf("leading newlines at the top of the page must be dropped: %q", body.Text)
	}
	body = paginateOne(t, "a\n\nb", testTemplates(`\`))
	if body.Text != `a \n\nb ` {
		t.Fatalf("unexpected body %q", body.Text)
	}
}

func TestPaginateNewlineOnLastLineBreaksPage(t *testing.T) {
	tpl := testTemplates(`\`)
	want := "a " + strings.Repeat(`\n`, 13) + testPageBreak + "b "

	body := paginateOne(t, "a"+strings.Repeat("\n", 14)+"b", tpl)
	if body.Text != want {
		t.Fatalf("unexpected body\n got %q\nwant %q", body.Text, want)
	}
	if strings.Count(body.Text, testPageBreak) != 1 {
		t.Fatalf("expected exactly one page break")
	}

	// A further newline lands at the top of the fresh page and vanishes.
	body = paginateOne(t, "a"+strings.Repeat("\n", 15)+"b", tpl)
	if body.Text != want {
		t.Fatalf("unexpected body\n got %q\nwant %q", body.Text, want)
	}
}

func TestPaginateSplitsLongWord(t *testing.T) {
	// 40 'w' at 6px: 19 per line, occupying three lines.
	body := paginateOne(t, strings.Repeat("w", 40)+" x", testTemplates(`\`))
	if body.Text != strings.Repeat("w", 40)+" x " {
		t.Fatalf("unexpected body %q", body.Text)
	}

	p := &paginator{
		newline:    `\n`,
		pageEnd:    PageEnd,
		spaceWidth: 4,
		glyphs:     glyphBuilder{widths: DefaultWidthTable(), escape: `\`},
		cur:        Cursor{Page: 1, Line: 1},
	}
	p.place(strings.Repeat("w", 40))
	if p.cur.Line != 4 || p.cur.Pixels != 4 {
		t.Fatalf("expected cursor on line 4 after the separator, got %+v", p.cur)
	}
}

func TestPaginateLongWordKeepsEscapesAcrossPages(t *testing.T) {
	tpl := testTemplates(`\\`)
	// Reach the last line, then place 60 quotes (4px each, rendered \\").
	text := "a" + strings.Repeat("\n", 13) + strings.Repeat(`"`, 60)
	body := paginateOne(t, text, tpl)

	want := "a " + strings.Repeat(`\\n`, 13) +
		strings.Repeat(`\\"`, 28) + testPageBreak + strings.Repeat(`\\"`, 32) + " "
	if body.Text != want {
		t.Fatalf("unexpected body\n got %q\nwant %q", body.Text, want)
	}
	for i, page := range strings.Split(body.Text, testPageBreak) {
		quotes := strings.TrimSpace(strings.ReplaceAll(page, `\\n`, ""))
		quotes = strings.TrimPrefix(quotes, "a ")
		if strings.ReplaceAll(quotes, `\\"`, "") != "" {
			t.Fatalf("page %d holds a broken escape sequence: %q", i+1, page)
		}
	}
}

func TestPaginateMaxPagesStartsNewBook(t *testing.T) {
	tpl := testTemplates(`\`)
	bodies := Paginate(words("aaaaa", 43), tpl, WithMaxPages(1))
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	if bodies[0].Text != strings.Repeat("aaaaa ", 42) || bodies[1].Text != "aaaaa " {
		t.Fatalf("unexpected bodies %q", bodies)
	}
	for i, b := range bodies {
		if b.Pages != 1 || strings.Contains(b.Text, testPageBreak) {
			t.Fatalf("body %d exceeds the page limit: %+v", i, b)
		}
	}

	bodies = Paginate(words("aaaaa", 43)+" {PAGE_END} z", tpl, WithMaxPages(2))
	if len(bodies) != 2 || bodies[1].Text != "z " || bodies[0].Pages != 2 {
		t.Fatalf("unexpected bodies %+v", bodies)
	}
}

func TestPaginateMaxPagesWithoutTrailingText(t *testing.T) {
	tpl := testTemplates(`\`)
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "page end", text: "hello {PAGE_END}", want: "hello "},
		{name: "newline on last line", text: "hello" + strings.Repeat("\n", BookHeight), want: "hello " + strings.Repeat(`\n`, BookHeight-1)},
		{name: "page end then blank lines", text: "hello {PAGE_END}\n\n", want: "hello "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := paginateOne(t, tc.text, tpl, WithMaxPages(1))
			if body.Text != tc.want || body.Pages != 1 {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestPaginateEmptyText(t *testing.T) {
	body := paginateOne(t, "", testTemplates(`\`))
	if body.Text != "" || body.Pages != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestPaginateCursorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	alphabet := []rune(`abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,;:!?'"\-@~`)
	tpl := testTemplates(`\\`)
	cfg := newConfig(nil)
	p := &paginator{
		tpl:        tpl,
		newline:    tpl.EscapedNewline(),
		pageEnd:    cfg.pageEnd,
		spaceWidth: cfg.widths.Width(' ') + 1,
		glyphs:     glyphBuilder{widths: cfg.widths, escape: tpl.Escape},
		cur:        Cursor{Page: 1, Line: 1},
	}
	for i := 0; i < 5000; i++ {
		var tok string
		switch rng.IntN(12) {
		case 0:
			tok = "\n"
		case 1:
			if rng.IntN(10) == 0 {
				tok = PageEnd
				break
			}
			fallthrough
		default:
			n := 1 + rng.IntN(14)
			var b strings.Builder
			for j := 0; j < n; j++ {
				b.WriteRune(alphabet[rng.IntN(len(alphabet))])
			}
			tok = b.String()
		}
		g := p.glyphs.build(tok, p.cur.atPageStart())
		pagesBefore := strings.Count(p.body.String(), testPageBreak)
		lineBefore := p.cur.Line
		p.place(tok)

		if p.cur.Line < 1 || p.cur.Line > BookHeight {
			t.Fatalf("token %d %q left line %d", i, tok, p.cur.Line)
		}
		limit := BookWidth
		if isSeparated(tok) {
			limit += p.spaceWidth
		}
		if g.Width <= BookWidth && p.cur.Pixels > limit {
			t.Fatalf("token %d %q overflowed the line: %d px", i, tok, p.cur.Pixels)
		}
		if p.cur.Line < lineBefore && strings.Count(p.body.String(), testPageBreak) == pagesBefore {
			t.Fatalf("token %d %q moved to a new page without a page break", i, tok)
		}
	}
	if got := strings.Count(p.body.String(), testPageBreak) + 1; got != p.cur.Page {
		t.Fatalf("page counter %d disagrees with %d page breaks", p.cur.Page, got-1)
	}
}

func TestPaginateIsDeterministic(t *testing.T) {
	text := words("The quick \"brown\" fox's \\ jumps", 80) + "\n\n" + words("over", 100)
	tpl := testTemplates(`\`)
	first := Paginate(text, tpl)
	for i := 0; i < 3; i++ {
		again := Paginate(text, tpl)
		if len(again) != len(first) || again[0] != first[0] {
			t.Fatalf("pagination is not deterministic")
		}
	}
}
