package query

import (
	"strings"

	"github.com/cobalt-web/cobalt/http/status"
)

// Pair is a single query parameter. A parameter given as a bare key ("?verbose")
// carries no value at all, which is distinct from an explicitly empty one
// ("?mode="). HasValue tells these two apart.
type Pair struct {
	Key, Value string
	HasValue   bool
}

// Params stores parsed query parameters. Same as kv.Storage, it is backed by
// a plain slice with linear lookup, except keys are matched case-sensitively
// and values are optional.
type Params struct {
	pairs []Pair
}

func NewParams() *Params {
	return new(Params)
}

// Get returns the value corresponding to the key. Parameters without a value
// yield an empty string, indistinguishable from explicitly empty ones; use
// Lookup if the difference matters.
func (p *Params) Get(key string) (value string, found bool) {
	for _, pair := range p.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}

	return "", false
}

// Lookup additionally reports whether the parameter carried a value.
func (p *Params) Lookup(key string) (value string, hasValue, found bool) {
	for _, pair := range p.pairs {
		if pair.Key == key {
			return pair.Value, pair.HasValue, true
		}
	}

	return "", false, false
}

// Value returns the value corresponding to the key, otherwise an empty string.
func (p *Params) Value(key string) string {
	value, _ := p.Get(key)
	return value
}

// Has tells whether the key is present.
func (p *Params) Has(key string) bool {
	_, found := p.Get(key)
	return found
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Expose grants access to the underlying pairs slice.
func (p *Params) Expose() []Pair {
	return p.pairs
}

// Clear all the stored parameters, keeping the underlying storage.
func (p *Params) Clear() {
	p.pairs = p.pairs[:0]
}

func (p *Params) set(key, value string, hasValue bool) {
	for i, pair := range p.pairs {
		if pair.Key == key {
			p.pairs[i].Value = value
			p.pairs[i].HasValue = hasValue
			return
		}
	}

	p.pairs = append(p.pairs, Pair{Key: key, Value: value, HasValue: hasValue})
}

// Parse processes a raw query string, the part of the request target after the
// question mark. Parameters are separated by ampersands; each one is either a
// bare key, a key with an empty value ("key=") or a key-value pair. Keys and
// values are trimmed of ASCII whitespace, repeated keys override earlier ones.
// No percent-decoding is performed.
//
// An empty parameter (produced by a leading, trailing or doubled ampersand)
// and a parameter holding more than one unquoted equals sign are both
// malformed and yield status.ErrBadQuery.
func Parse(raw string, into *Params) error {
	for {
		element, rest, more := strings.Cut(raw, "&")
		if len(element) == 0 {
			return status.ErrBadQuery
		}

		key, value, hasValue := strings.Cut(element, "=")
		if strings.IndexByte(value, '=') != -1 {
			return status.ErrBadQuery
		}

		into.set(strings.TrimSpace(key), strings.TrimSpace(value), hasValue)

		if !more {
			return nil
		}

		raw = rest
	}
}
