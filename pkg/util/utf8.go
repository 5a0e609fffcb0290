package util

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// ValidUTF8Reader wraps an io.Reader and silently drops any bytes that do
// not form valid UTF-8 sequences.
type ValidUTF8Reader struct {
	buffer *bufio.Reader
}

// NewValidUTF8Reader constructs a ValidUTF8Reader around an existing
// io.Reader.
func NewValidUTF8Reader(rd io.Reader) ValidUTF8Reader {
	return ValidUTF8Reader{bufio.NewReader(rd)}
}

func (rd ValidUTF8Reader) Read(p []byte) (n int, err error) {
	for {
		var r rune
		var size int

		r, size, err = rd.buffer.ReadRune()
		if err != nil {
			return
		}

		// ReadRune signals an invalid sequence by returning the
		// replacement character with a size of one.
		if r == utf8.RuneError && size == 1 {
			continue
		}

		if n+size > len(p) {
			err = rd.buffer.UnreadRune()
			return
		}

		n += utf8.EncodeRune(p[n:], r)
	}
}
