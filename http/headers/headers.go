package headers

import (
	"maps"
	"sort"

	"github.com/indigo-web/utils/strcomp"
)

// Headers maps header names to their values. Names are stored exactly as they were
// received, so lookups are case-sensitive unless GetFold is used. Every name holds a
// single value: setting an existing name overrides it.
type Headers map[string]string

func New() Headers {
	return make(Headers)
}

// NewPrealloc returns an empty Headers with room for n entries.
func NewPrealloc(n int) Headers {
	return make(Headers, n)
}

// NewFromMap returns a copy of the given map.
func NewFromMap(m map[string]string) Headers {
	if m == nil {
		return New()
	}

	return Headers(maps.Clone(m))
}

// Set stores the value, overriding the previous one if any. Returns whether a value
// was overridden.
func (h Headers) Set(key, value string) (overridden bool) {
	_, overridden = h[key]
	h[key] = value
	return overridden
}

// Value returns the value, corresponding to the key. Otherwise, empty string is returned
func (h Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or custom value, defined
// via the second parameter.
func (h Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

func (h Headers) Get(key string) (value string, found bool) {
	value, found = h[key]
	return value, found
}

// GetFold looks the key up case-insensitively. If several names match, which one is
// returned is unspecified.
func (h Headers) GetFold(key string) (value string, found bool) {
	if value, found = h[key]; found {
		return value, true
	}

	for name, value := range h {
		if strcomp.EqualFold(name, key) {
			return value, true
		}
	}

	return "", false
}

func (h Headers) Has(key string) bool {
	_, found := h[key]
	return found
}

// Keys returns all the names in lexicographical order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func (h Headers) Len() int {
	return len(h)
}

// Clone returns an independent copy.
func (h Headers) Clone() Headers {
	if h == nil {
		return New()
	}

	return maps.Clone(h)
}
