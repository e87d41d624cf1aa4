package config

// BodyLines decides what happens when a request contains more than one body line.
type BodyLines uint8

const (
	// LastLine keeps only the last met body line, discarding previous ones.
	LastLine BodyLines = iota + 1
	// JoinLines concatenates all the body lines using Body.Separator.
	JoinLines
)

type (
	Headers struct {
		// Prealloc is the initial capacity of the request headers map.
		Prealloc int
	}

	Body struct {
		// Lines is the policy for requests carrying more than one body line. Defaults
		// to LastLine.
		Lines BodyLines
		// Separator is put between body lines if Lines is JoinLines.
		Separator string
	}
)

// Config holds settings used by the parser.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Prealloc: 10,
		},
		Body: Body{
			Lines:     LastLine,
			Separator: "\n",
		},
	}
}
