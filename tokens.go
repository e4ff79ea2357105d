package mcbook

import (
	"iter"
	"strings"
)

// Tokens splits text into space-delimited words in source order. Every
// newline becomes a token of its own and empty tokens are dropped.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := strings.ReplaceAll(text, "\n", " \n ")
		for len(rest) > 0 {
			var tok string
			if i := strings.IndexByte(rest, ' '); i >= 0 {
				tok, rest = rest[:i], rest[i+1:]
			} else {
				tok, rest = rest, ""
			}
			if tok == "" {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// isSeparated reports whether a word gets a trailing space once appended.
func isSeparated(tok string) bool {
	return strings.TrimSpace(tok) != ""
}
