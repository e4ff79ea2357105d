package mcbook

import "strings"

// Sentinel markers recognised in the input text.
const (
	PageEnd = "{PAGE_END}"
	BookEnd = "{BOOK_END}"
)

// Document is one slice of the input that becomes its own book.
type Document struct {
	Title string
	Body  string
}

// Split cuts text at every marker and trims surrounding whitespace from each
// part. The result always holds at least one element.
func Split(text, marker string) []string {
	parts := strings.Split(text, marker)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// SplitDocuments splits text into documents at marker. With inlineTitles the
// first line of each document is its title; otherwise every document uses
// title.
func SplitDocuments(text, marker, title string, inlineTitles bool) []Document {
	parts := Split(text, marker)
	docs := make([]Document, len(parts))
	for i, part := range parts {
		if !inlineTitles {
			docs[i] = Document{Title: title, Body: part}
			continue
		}
		head, rest, _ := strings.Cut(part, "\n")
		docs[i] = Document{
			Title: strings.TrimSpace(head),
			Body:  strings.TrimSpace(rest),
		}
	}
	return docs
}

// normalizeText drops a byte order mark, folds CRLF line endings and turns
// tabs into spaces.
func normalizeText(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\t", " ")
}
