package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mcbook"
)

// readManuscript reads every input in order. Inputs are joined by a newline
// so the last word of one never runs into the first word of the next. With no
// inputs the manuscript is read from stdin.
func readManuscript(ctx context.Context, inputs []string, stdin io.Reader) ([]byte, error) {
	if len(inputs) == 0 {
		return io.ReadAll(stdin)
	}
	var manuscript bytes.Buffer
	for i, input := range inputs {
		text, err := readSource(ctx, input, stdin)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			manuscript.WriteByte('\n')
		}
		manuscript.Write(text)
	}
	return manuscript.Bytes(), nil
}

// readSource reads one input: "-" for stdin, an http(s) or file URL, or a
// path where a leading ~ names the home directory.
func readSource(ctx context.Context, input string, stdin io.Reader) ([]byte, error) {
	input = strings.TrimSpace(input)
	switch input {
	case "":
		return nil, errors.New("empty input argument")
	case "-":
		return io.ReadAll(stdin)
	}
	if u, err := url.Parse(input); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return mcbook.FetchText(ctx, nil, input)
		case "file":
			return readTextFile(fileURLPath(u))
		}
	}
	return readTextFile(input)
}

func fileURLPath(u *url.URL) string {
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}

func readTextFile(path string) ([]byte, error) {
	text, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
