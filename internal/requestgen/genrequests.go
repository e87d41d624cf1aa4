package requestgen

import (
	"strconv"
	"strings"

	"github.com/indigo-web/reqparse/http/headers"
)

func Headers(n int) headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Set("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	hdrs.Set("Host", "localhost")

	return hdrs
}

// HeadersBlock renders headers sorted by their names.
func HeadersBlock(hdrs headers.Headers) (buff []byte) {
	for _, key := range hdrs.Keys() {
		buff = append(buff, key+": "+hdrs.Value(key)+"\r\n"...)
	}

	return buff
}

// Generate renders a complete request. The body is appended after the empty line as is.
func Generate(method, uri string, hdrs headers.Headers, body string) (request []byte) {
	request = append(request, method+" "+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)
	request = append(request, '\r', '\n')

	return append(request, body...)
}
