package http

import (
	"net"

	"github.com/cobalt-web/cobalt/http/method"
	"github.com/cobalt-web/cobalt/http/query"
	"github.com/cobalt-web/cobalt/kv"
	json "github.com/json-iterator/go"
)

type (
	Headers = *kv.Storage
	Params  = *kv.Storage
	Query   = *query.Params
)

// Request represents a single HTTP request. It is owned by the connection's
// goroutine for the duration of the request and must not be retained by
// handlers past their return.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the part of the request target before the question mark, stored
	// verbatim including the leading slash. No decoding is performed.
	Path string
	// Version is the protocol version exactly as it appeared on the request
	// line, e.g. "HTTP/1.1".
	Version string
	// Headers holds non-normalized header pairs. Lookup is case-insensitive.
	Headers Headers
	// Query holds parsed query parameters, if the request target carried any.
	Query Query
	// Params holds dynamic path segments bound by the router. A wildcard tail
	// is stored under the reserved key "*".
	Params Params
	// Body is the request body, which may be empty. It is only read when the
	// client announced its length via Content-Length.
	Body []byte
	// Remote holds the address of the peer. Note that this is generally not a
	// good way to identify a user, as there might be proxies in the middle.
	Remote net.Addr
}

func NewRequest() *Request {
	return &Request{
		Method:  method.Unknown,
		Headers: kv.New(),
		Query:   query.NewParams(),
		Params:  kv.New(),
	}
}

// JSON unmarshals the request body into the model, which must be a pointer.
func (r *Request) JSON(model any) error {
	return json.ConfigDefault.Unmarshal(r.Body, model)
}

// Reset the request, keeping the allocated storages.
func (r *Request) Reset() {
	r.Method = method.Unknown
	r.Path = ""
	r.Version = ""
	r.Headers.Clear()
	r.Query.Clear()
	r.Params.Clear()
	r.Body = nil
	r.Remote = nil
}
