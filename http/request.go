package http

import (
	"github.com/indigo-web/reqparse/http/headers"
	"github.com/indigo-web/reqparse/http/method"
	"github.com/indigo-web/reqparse/http/proto"
)

// Request represents HTTP request
type Request struct {
	// Method is an enum representing the request method. Tokens other than GET and POST
	// result in method.Unknown.
	Method method.Method
	// Proto is the enum of a protocol version used for the request. Defaults to HTTP/1.1
	// even if no request line was met.
	Proto proto.Proto
	// Resource is the request target as it was received, without any decoding.
	Resource Resource
	// Headers holds non-normalized header pairs. Keys aren't trimmed, values are stripped
	// of leading whitespace only.
	Headers headers.Headers
	// Body is the message body.
	Body string
}

// NewRequest returns a request with every field set to its default. headersPrealloc is
// the initial capacity of the headers map.
func NewRequest(headersPrealloc int) Request {
	return Request{
		Method:   method.Unknown,
		Proto:    proto.HTTP11,
		Resource: Path(""),
		Headers:  headers.NewPrealloc(headersPrealloc),
	}
}

// Path returns the request target if the resource is a Path. Otherwise, empty string
// is returned
func (r Request) Path() string {
	if path, ok := r.Resource.(Path); ok {
		return string(path)
	}

	return ""
}
