package strutil

import (
	"strings"
	"unicode"
)

// LStripWS strips all the leading whitespace characters, including Unicode ones.
func LStripWS(str string) string {
	for i, c := range str {
		if !unicode.IsSpace(c) {
			return str[i:]
		}
	}

	return ""
}

// CutLine returns the first line of the data and the rest of it. Lines are terminated
// either by LF or CRLF, the terminator is included in neither of the parts.
func CutLine(data string) (line, rest string) {
	line, rest, _ = strings.Cut(data, "\n")
	return strings.TrimSuffix(line, "\r"), rest
}
