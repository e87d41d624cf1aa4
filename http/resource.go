package http

// Resource is the target of a request. Path is currently the only form; absolute URIs
// and authorities may be added as other implementations.
type Resource interface {
	String() string
	resource()
}

// Path is an origin-form target, e.g. /greeting. It is stored verbatim.
type Path string

func (p Path) String() string {
	return string(p)
}

func (Path) resource() {}
