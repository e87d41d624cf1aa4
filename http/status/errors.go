package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest = NewError(BadRequest, "bad request")
	// ErrMalformedRequestLine is returned when a request line doesn't consist of exactly
	// three whitespace-separated tokens.
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
)
