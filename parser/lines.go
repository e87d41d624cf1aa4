package parser

import "strings"

type lineKind uint8

const (
	blankLine lineKind = iota
	requestLine
	headerLine
	bodyLine
)

// requestLineMarker is what makes a line being treated as a request line, wherever
// it's placed.
const requestLineMarker = "HTTP"

// classify decides what the line is. Order matters: a request line may contain a
// colon as well (e.g. absolute-form targets), so it's checked first.
func classify(line string) lineKind {
	switch {
	case strings.Contains(line, requestLineMarker):
		return requestLine
	case strings.IndexByte(line, ':') != -1:
		return headerLine
	case len(line) == 0:
		return blankLine
	default:
		return bodyLine
	}
}
