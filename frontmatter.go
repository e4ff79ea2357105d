package mcbook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FrontMatter is book metadata read from a fenced block at the start of the
// input.
type FrontMatter struct {
	Title  string
	Author string
}

// ExtractFrontMatter removes a leading ---, +++ or ;;; fenced block from src
// and returns its title and author. ok is false and src is returned
// unchanged when the input does not open with a closed, metadata-like block
// naming a title or an author; a block without either is book text.
func ExtractFrontMatter(src []byte) (fm FrontMatter, rest []byte, ok bool) {
	openLine, openNext, _ := nextLine(src, 0)
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return FrontMatter{}, src, false
	}
	secondLine, _, found := nextLine(src, openNext)
	if !found || !frontMatterMetadataLikely(secondLine) {
		return FrontMatter{}, src, false
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return FrontMatter{}, src, false
	}
	fm = parseFrontMatter(src[openNext:closeStart])
	if fm == (FrontMatter{}) {
		return FrontMatter{}, src, false
	}
	return fm, src[closeNext:], true
}

func parseFrontMatter(block []byte) FrontMatter {
	trimmed := bytes.TrimSpace(block)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		var meta struct {
			Title  string `json:"title"`
			Author string `json:"author"`
		}
		if err := json.Unmarshal(trimmed, &meta); err == nil {
			return FrontMatter{Title: meta.Title, Author: meta.Author}
		}
		return FrontMatter{}
	}
	var fm FrontMatter
	for _, line := range strings.Split(string(block), "\n") {
		key, value, ok := cutKeyValue(line)
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "title":
			fm.Title = value
		case "author":
			fm.Author = value
		}
	}
	return fm
}

// cutKeyValue splits "key: value" and "key = value" lines, dropping matching
// quotes around the value.
func cutKeyValue(line string) (string, string, bool) {
	i := strings.IndexAny(line, ":=")
	if i <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:i])
	value := strings.TrimSpace(line[i+1:])
	if len(value) >= 2 {
		if q := value[0]; (q == '"' || q == '\'') && value[len(value)-1] == q {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, key != ""
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, len(src), false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

// findClosingFrontMatterDelimiter returns the offsets of the closing
// delimiter line and of the byte following it.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
