package proto

import "github.com/indigo-web/utils/uf"

type Proto uint8

const (
	Unknown Proto = iota
	HTTP11
	HTTP2
)

func (p Proto) String() string {
	lut := [...]string{Unknown: "UNKNOWN", HTTP11: "HTTP/1.1", HTTP2: "HTTP/2.0"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

const (
	protoTokenLength   = len("HTTP/x.x")
	majorVersionOffset = len("HTTP/x") - 1
	minorVersionOffset = len("HTTP/x.x") - 1
	dotOffset          = len("HTTP/x")
	httpScheme         = "HTTP/"
)

var majorMinorVersionLUT = [10][10]Proto{
	1: {1: HTTP11},
	2: {0: HTTP2},
}

// FromString maps the version token of a request line. Only exact "HTTP/1.1" and
// "HTTP/2.0" are recognized, everything else is Unknown.
func FromString(raw string) Proto {
	if len(raw) != protoTokenLength || raw[:majorVersionOffset] != httpScheme || raw[dotOffset] != '.' {
		return Unknown
	}

	return Parse(raw[majorVersionOffset]-'0', raw[minorVersionOffset]-'0')
}

func FromBytes(raw []byte) Proto {
	return FromString(uf.B2S(raw))
}

func Parse(major, minor uint8) Proto {
	if major > 9 || minor > 9 {
		return Unknown
	}

	return majorMinorVersionLUT[major][minor]
}
