package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, POST}

// Parse maps the method token. The match is case-sensitive, anything unsupported
// results in Unknown.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		}
	case 4:
		if str == "POST" {
			return POST
		}
	}

	return Unknown
}

func (m Method) String() string {
	lut := [...]string{Unknown: "UNKNOWN", GET: "GET", POST: "POST"}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}
