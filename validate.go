package mcbook

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput rejects text that cannot be laid out as book pages: invalid
// UTF-8, NUL bytes, or a sample dense with control characters. Errors wrap
// ErrInvalidUTF8 or ErrBinaryInput and name the offending byte offset.
func ValidateInput(src []byte) error {
	var total, control int
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		}
		if r == 0 {
			return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, i)
		}
		total += size
		if isControlRune(r) {
			control++
		}
		i += size
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return fmt.Errorf("%w: %d control characters in %d bytes", ErrBinaryInput, control, total)
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' || r == '\v' || r == '\f' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
