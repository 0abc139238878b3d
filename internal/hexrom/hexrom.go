// Package hexrom decodes CHIP-8 programs written as hexadecimal text.
//
// Programs are often published as hex dumps like "6001 7002 1200". All whitespace is
// ignored, every pair of hex digits forms one byte, high nibble first. A trailing single
// digit is dropped.
package hexrom

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// Decode reads hex text from the reader and returns the decoded bytes.
func Decode(r io.Reader) ([]byte, error) {
	reader := bufio.NewReader(r)

	var data []byte
	var high byte
	var haveHigh bool

	for offset := 0; ; {
		c, size, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading hex text: %w", err)
		}

		pos := offset
		offset += size
		if unicode.IsSpace(c) {
			continue
		}

		nibble, ok := hexValue(c)
		if !ok {
			return nil, fmt.Errorf("invalid hex character %q at offset %d", c, pos)
		}

		if !haveHigh {
			high = nibble
			haveHigh = true
			continue
		}
		data = append(data, high<<4|nibble)
		haveHigh = false
	}

	return data, nil
}

func hexValue(c rune) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, true
	default:
		return 0, false
	}
}
