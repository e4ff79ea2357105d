package mcbook

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GenerateRequest configures Generate.
type GenerateRequest struct {
	Reader       io.Reader
	Writer       io.Writer
	Title        string
	Author       string
	Version      string
	InlineTitles bool
	Options      []Option
}

// Book is one serialized give command.
type Book struct {
	Document int
	Title    string
	Pages    int
	Command  string
}

// Generate reads text from req.Reader and writes one newline-terminated
// command per book to req.Writer, in input order. Nothing is written if the
// version cannot be resolved or the input is rejected.
func Generate(req GenerateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("generate: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("generate: Writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("generate: read input: %w", err)
	}
	books, err := Books(src, req)
	if err != nil {
		return err
	}
	return WriteCommands(req.Writer, books)
}

// WriteCommands writes the command of every book to w, one per line.
func WriteCommands(w io.Writer, books []Book) error {
	bw := bufio.NewWriter(w)
	for _, b := range books {
		_, _ = bw.WriteString(b.Command)
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("generate: write: %w", err)
	}
	return nil
}

// Books converts src into serialized books. Reader and Writer of req are
// ignored.
func Books(src []byte, req GenerateRequest) ([]Book, error) {
	cfg := newConfig(req.Options)
	version := req.Version
	if version == "" {
		version = DefaultVersion
	}
	tpl, err := cfg.tables.Resolve(version)
	if err != nil {
		return nil, fmt.Errorf("generate: version %s: %w", version, err)
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	title, author := req.Title, req.Author
	if fm, rest, ok := ExtractFrontMatter(src); ok {
		src = rest
		if title == "" {
			title = fm.Title
		}
		if author == "" {
			author = fm.Author
		}
	}

	docs := SplitDocuments(normalizeText(string(src)), cfg.bookEnd, title, req.InlineTitles)
	diag := newDiagnostics(cfg.log)
	perDoc := make([][]Book, len(docs))

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, doc := range docs {
		g.Go(func() error {
			perDoc[i] = documentBooks(i, doc, author, tpl, cfg, diag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var books []Book
	for _, bs := range perDoc {
		books = append(books, bs...)
	}
	return books, nil
}

func documentBooks(index int, doc Document, author string, tpl Templates, cfg config, diag *diagnostics) []Book {
	bodies := paginate(doc.Body, tpl, cfg, diag)
	books := make([]Book, len(bodies))
	for n, body := range bodies {
		title := doc.Title
		if n > 0 {
			title += " " + strconv.Itoa(n+1)
		}
		books[n] = Book{
			Document: index,
			Title:    title,
			Pages:    body.Pages,
			Command:  Serialize(body.Text, title, author, tpl),
		}
		cfg.log.Debug("book finished",
			zap.Int("document", index),
			zap.Int("book", n+1),
			zap.Int("pages", body.Pages),
		)
	}
	return books
}
