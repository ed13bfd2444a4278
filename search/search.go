// Package search finds byte patterns in a buffer and moves its cursor to
// the match.
package search

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/iw2rmb/hed/buffer"
)

var (
	ErrBadPattern = errors.New("bad search string")
	ErrNotFound   = errors.New("pattern not found")
)

// DecodeHex parses pairs of hex digits. Spaces, tabs and commas may
// separate digits anywhere; anything else, an odd digit count, or no digits
// at all is ErrBadPattern.
func DecodeHex(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)/2)
	var high byte
	half := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case ' ', '\t', ',':
			continue
		}
		d, ok := hexValue(c)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q", ErrBadPattern, c)
		}
		if !half {
			high, half = d, true
			continue
		}
		out = append(out, high<<4|d)
		half = false
	}

	if half {
		return nil, fmt.Errorf("%w: odd number of hex digits", ErrBadPattern)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadPattern)
	}
	return out, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Pattern turns prompt text into search bytes: the hex pane reads hex
// digit pairs, the text pane searches for the text as typed.
func Pattern(pane buffer.Pane, text string) ([]byte, error) {
	if pane == buffer.PaneHex {
		return DecodeHex(text)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadPattern)
	}
	return []byte(text), nil
}

// Index returns the first offset at or after from where pattern starts,
// or -1. Matches must fit entirely inside data.
func Index(data, pattern []byte, from int) int {
	if len(pattern) == 0 || from < 0 || from+len(pattern) > len(data) {
		return -1
	}
	i := bytes.Index(data[from:], pattern)
	if i < 0 {
		return -1
	}
	return from + i
}

// Forward searches b for pattern starting one byte past the cursor, without
// wrapping around. On a match the cursor lands on its first byte and the
// whole match is brought on screen; otherwise the cursor stays put and
// ErrNotFound is returned.
func Forward(b *buffer.Buffer, pattern []byte, rows int) (int, error) {
	if len(pattern) == 0 {
		return -1, fmt.Errorf("%w: empty", ErrBadPattern)
	}
	pos := Index(b.Bytes(), pattern, b.Cursor()+1)
	if pos < 0 {
		return -1, ErrNotFound
	}
	b.SetCursor(pos, len(pattern), rows)
	return pos, nil
}
