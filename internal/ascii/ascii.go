// Package ascii classifies bytes for the ASCII-only text engine.
package ascii

// IsSpace reports whether c is an ASCII whitespace byte.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Printable reports whether c is a printable ASCII byte, space through tilde.
func Printable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// Valid reports whether s contains only ASCII bytes.
func Valid(s string) bool {
	return FirstInvalid(s) < 0
}

// FirstInvalid returns the index of the first byte outside the ASCII range,
// or -1 when s is pure ASCII.
func FirstInvalid(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}
