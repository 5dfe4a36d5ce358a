package content

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ReadInput reads all text from r, normalizing \r\n line endings to \n
// maxBytes <= 0 reads without limit; longer input is cut at the limit and a
// rune split by the cut is dropped
func ReadInput(r io.Reader, maxBytes int) (string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, int64(maxBytes))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if maxBytes > 0 && len(data) == maxBytes {
		data = trimPartialRune(data)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of data
func trimPartialRune(data []byte) []byte {
	start := len(data) - 1
	for start > 0 && len(data)-start < utf8.UTFMax && !utf8.RuneStart(data[start]) {
		start--
	}
	if start >= 0 && !utf8.FullRune(data[start:]) {
		return data[:start]
	}
	return data
}
