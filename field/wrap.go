package field

import (
	"strings"

	"github.com/iw2rmb/tuido/internal/ascii"
)

// Wrap word-wraps text into at most height physical lines of at most width
// bytes each and returns them top to bottom. Layout rules live on wrapWords.
func Wrap(text string, width, height int) ([]string, error) {
	if i := ascii.FirstInvalid(text); i >= 0 {
		return nil, notASCII(text, i)
	}
	return wrapWords(text, width, height), nil
}

// wrapWords lays text out one logical line at a time, consuming tokens into a
// pending physical line:
//
//   - a token that fits extends the pending line, whitespace included
//   - a token that does not fit flushes the pending line and starts the next
//   - a token wider than a whole line is hard-split into width-sized chunks;
//     full chunks flush immediately, a short remainder stays pending so later
//     tokens can extend it
//   - on the last allowed line the pending line is instead force-extended up
//     to width bytes and everything after it is dropped
//
// Layout never exceeds height lines. Degenerate geometry yields no lines.
// text must be ASCII.
func wrapWords(text string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	result := make([]string, 0, height)
	for _, rawLine := range logicalLines(text) {
		lineStart := -1 // pending line is rawLine[lineStart:lineEnd], -1 while empty
		lineEnd := 0
		currentLen := 0

		for _, tok := range tokenize(rawLine) {
			tokenLen := tok.Len()
			lastLine := len(result) == height-1
			fits := currentLen+tokenLen <= width

			if lastLine && !fits {
				ls := tok.Start
				if lineStart >= 0 {
					ls = lineStart
				}
				result = append(result, rawLine[ls:minInt(ls+width, tok.End)])
				return result
			}

			if tokenLen > width {
				if lineStart >= 0 {
					result = append(result, rawLine[lineStart:lineEnd])
					if len(result) >= height {
						return result
					}
				}
				lineStart = -1
				lineEnd = 0
				currentLen = 0
				for pos := tok.Start; pos < tok.End; pos += width {
					if pos+width <= tok.End {
						result = append(result, rawLine[pos:pos+width])
						if len(result) >= height {
							return result
						}
						continue
					}
					lineStart = pos
					lineEnd = tok.End
					currentLen = tok.End - pos
				}
				continue
			}

			if !fits {
				if lineStart >= 0 {
					result = append(result, rawLine[lineStart:lineEnd])
					if len(result) >= height {
						return result
					}
				}
				lineStart = tok.Start
				lineEnd = tok.End
				currentLen = tokenLen
				continue
			}

			if lineStart < 0 {
				lineStart = tok.Start
			}
			lineEnd = tok.End
			currentLen += tokenLen
		}

		if lineStart >= 0 {
			result = append(result, rawLine[lineStart:lineEnd])
			if len(result) >= height {
				return result
			}
		}
	}
	return result
}

// wrapChars splits every logical line into width-sized chunks, ignoring token
// boundaries. The height bound matches wrapWords. text must be ASCII.
func wrapChars(text string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	result := make([]string, 0, height)
	for _, rawLine := range logicalLines(text) {
		for pos := 0; pos < len(rawLine); pos += width {
			result = append(result, rawLine[pos:minInt(pos+width, len(rawLine))])
			if len(result) >= height {
				return result
			}
		}
	}
	return result
}

// logicalLines splits text on '\n'. A trailing newline does not open another
// line, and a '\r' left by CRLF input is dropped from the line end.
func logicalLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
