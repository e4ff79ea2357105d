package mcbook

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrNoApplicableVersion reports that no fragment key is at or below the
	// requested version.
	ErrNoApplicableVersion = errors.New("no applicable version")
	// ErrMalformedVersion reports a version string that is not dot-separated
	// non-negative integers.
	ErrMalformedVersion = errors.New("malformed version")
)

var (
	versionLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "Dot", Pattern: `\.`},
	})

	versionParser = participle.MustBuild[versionAST](
		participle.Lexer(versionLexer),
	)
)

type versionAST struct {
	Parts []int `parser:"@Int ( Dot @Int )*"`
}

// Version is a parsed dotted version such as 1.20.5.
type Version []int

// ParseVersion parses a dot-separated numeric version string.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedVersion)
	}
	ast, err := versionParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrMalformedVersion, s, err)
	}
	if len(ast.Parts) == 0 {
		return nil, fmt.Errorf("%w %q", ErrMalformedVersion, s)
	}
	return Version(ast.Parts), nil
}

// Compare returns -1, 0 or 1. Missing trailing components count as zero, so
// 1.21 and 1.21.0 are equal.
func (v Version) Compare(o Version) int {
	n := max(len(v), len(o))
	for i := 0; i < n; i++ {
		a, b := v.at(i), o.at(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

func (v Version) at(i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// FragmentSet maps minimum versions to the syntax fragment used from that
// version onwards.
type FragmentSet map[string]string

// Resolve returns the fragment whose key is the greatest key not above
// requested.
func (fs FragmentSet) Resolve(requested string) (string, error) {
	want, err := ParseVersion(requested)
	if err != nil {
		return "", err
	}
	return fs.resolve(want)
}

func (fs FragmentSet) resolve(want Version) (string, error) {
	var (
		best     Version
		fragment string
		found    bool
	)
	for key, frag := range fs {
		v, err := ParseVersion(key)
		if err != nil {
			return "", fmt.Errorf("fragment key: %w", err)
		}
		if v.Compare(want) > 0 {
			continue
		}
		if !found || v.Compare(best) > 0 {
			best, fragment, found = v, frag, true
		}
	}
	if !found {
		return "", fmt.Errorf("%w for %s", ErrNoApplicableVersion, want)
	}
	return fragment, nil
}

// Keys returns the keys of fs in ascending version order. Malformed keys are
// skipped.
func (fs FragmentSet) Keys() []string {
	type entry struct {
		key string
		v   Version
	}
	entries := make([]entry, 0, len(fs))
	for key := range fs {
		v, err := ParseVersion(key)
		if err != nil {
			continue
		}
		entries = append(entries, entry{key: key, v: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].v.Compare(entries[j].v) < 0
	})
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}

func (v Version) String() string {
	b := make([]byte, 0, 3*len(v))
	for i, p := range v {
		if i > 0 {
			b = append(b, '.')
		}
		b = fmt.Appendf(b, "%d", p)
	}
	return string(b)
}
