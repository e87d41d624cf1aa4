// Package parser turns a complete textual HTTP/1.x request into http.Request.
//
// The input is processed line by line, each line being classified independently of
// others: a line containing "HTTP" is a request line, a line containing a colon is a
// header, an empty line is skipped and anything else is a body line. Unknown methods
// and protocol versions aren't errors, they result in method.Unknown and proto.Unknown
// correspondingly.
package parser

import (
	"fmt"
	"strings"

	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/http"
	"github.com/indigo-web/reqparse/http/method"
	"github.com/indigo-web/reqparse/http/proto"
	"github.com/indigo-web/reqparse/http/status"
	"github.com/indigo-web/reqparse/internal/strutil"
)

// Logger receives diagnostics about dropped data, e.g. discarded body lines or
// overridden headers.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Parser is safe for concurrent use, as it holds no state except for its settings.
type Parser struct {
	cfg *config.Config
	log Logger
}

// New returns a parser. Nil cfg means config.Default(), nil logger discards all the
// diagnostics.
func New(cfg *config.Config, logger Logger) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = nopLogger{}
	}

	return &Parser{
		cfg: cfg,
		log: logger,
	}
}

var defaultParser = New(nil, nil)

// Parse parses the request using the default config.
func Parse(raw string) (http.Request, error) {
	return defaultParser.Parse(raw)
}

// ParseBytes is Parse for byte slices. The returned request doesn't reference raw, so
// the buffer may be reused right after.
func ParseBytes(raw []byte) (http.Request, error) {
	return defaultParser.Parse(string(raw))
}

// Parse parses the raw request. Input that has no request line at all results in a
// request with all the defaults and no error. The only error returned is wrapped
// status.ErrMalformedRequestLine, in which case the request must not be used.
func (p *Parser) Parse(raw string) (request http.Request, err error) {
	request = http.NewRequest(p.cfg.Headers.Prealloc)

	var (
		line         string
		requestLines int
		bodyLines    int
		body         strings.Builder
	)

	for len(raw) > 0 {
		line, raw = strutil.CutLine(raw)

		switch classify(line) {
		case requestLine:
			if err = parseRequestLine(line, &request); err != nil {
				return request, err
			}

			if requestLines++; requestLines > 1 {
				p.log.Printf("parser: request line %q overrides the previous one", line)
			}
		case headerLine:
			key, value := parseHeaderLine(line)
			if request.Headers.Set(key, value) {
				p.log.Printf("parser: header %q is overridden", key)
			}
		case blankLine:
		case bodyLine:
			bodyLines++

			switch p.cfg.Body.Lines {
			case config.JoinLines:
				if bodyLines > 1 {
					body.WriteString(p.cfg.Body.Separator)
				}

				body.WriteString(line)
			default:
				if bodyLines > 1 {
					p.log.Printf("parser: discarding body line %q in favour of %q", request.Body, line)
				}

				request.Body = line
			}
		}
	}

	if p.cfg.Body.Lines == config.JoinLines {
		request.Body = body.String()
	}

	return request, nil
}

func parseRequestLine(line string, request *http.Request) error {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return fmt.Errorf("%w: %q", status.ErrMalformedRequestLine, line)
	}

	request.Method = method.Parse(tokens[0])
	request.Resource = http.Path(tokens[1])
	request.Proto = proto.FromString(tokens[2])

	return nil
}

// parseHeaderLine splits the line at the first colon. The key is left as is, the value
// is stripped of leading whitespace only.
func parseHeaderLine(line string) (key, value string) {
	key, value, _ = strings.Cut(line, ":")
	return key, strutil.LStripWS(value)
}
