package status

type (
	Code   uint16
	Status string
)

// Codes the parser is able to report. Callers usually answer a failed parse with
// the code of the returned error.
const (
	BadRequest Code = 400 // RFC 9110, 15.5.1
)

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case BadRequest:
		return "Bad Request"
	default:
		return ""
	}
}
