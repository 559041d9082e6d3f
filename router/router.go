package router

import (
	"errors"
	"strings"

	"github.com/cobalt-web/cobalt/http"
	"github.com/cobalt-web/cobalt/http/method"
)

var (
	ErrTrailingSegments   = errors.New("router: no segments may follow a wildcard")
	ErrAmbiguousParameter = errors.New("router: conflicting parameter names under one segment")
)

type (
	// Handler processes a request it exclusively owns into a response.
	// Handlers are shared across connection goroutines, so whatever state
	// they close over must be safe for concurrent use.
	Handler func(request *http.Request) *http.Response

	// StateHandler additionally receives the router's shared state. The state
	// is shared across all connection goroutines as well.
	StateHandler[T any] func(request *http.Request, state *T) *http.Response
)

// handler is either a plain or a stateful handler, decided at registration.
type handler[T any] struct {
	plain    Handler
	stateful StateHandler[T]
}

// Dispatcher is the router's contract with the server: turn a parsed request
// into a response, never returning nil.
type Dispatcher interface {
	OnRequest(request *http.Request) *http.Response
}

// Router matches a method and path against registered patterns and dispatches
// to the bound handler. Patterns consist of slash-separated segments, where
// ":name" matches any single non-empty segment and binds it, and "*" matches
// the whole remainder of the path, binding it under the key "*". Priority on
// ties is static > parameter > wildcard.
//
// Registration is not synchronized: build the whole route table first, then
// share the router across connections. From that point it is read-only and
// safe for concurrent matching.
type Router[T any] struct {
	root  *node[T]
	state *T
}

// New returns a router for plain handlers only.
func New() *Router[struct{}] {
	return NewState[struct{}](nil)
}

// NewState returns a router carrying shared user state, which stateful
// handlers receive on every call. A nil state is allowed, but dispatching a
// stateful handler without one degrades to a 500 response.
func NewState[T any](state *T) *Router[T] {
	return &Router[T]{
		root:  newNode[T](),
		state: state,
	}
}

// Route binds a plain handler to the method and pattern. The pattern is taken
// verbatim, so a leading slash produces an empty leading segment, matching
// the empty segment a slash-prefixed request path starts with.
func (r *Router[T]) Route(m method.Method, pattern string, h Handler) error {
	return r.root.insert(m, strings.Split(pattern, "/"), handler[T]{plain: h})
}

// RouteState binds a stateful handler to the method and pattern.
func (r *Router[T]) RouteState(m method.Method, pattern string, h StateHandler[T]) error {
	return r.root.insert(m, strings.Split(pattern, "/"), handler[T]{stateful: h})
}

// OnRequest resolves the request to a handler and invokes it. Misses turn
// into a 404, a stateful handler on a router with no state turns into a 500.
func (r *Router[T]) OnRequest(request *http.Request) *http.Response {
	h, found := r.root.match(request, strings.Split(request.Path, "/"))
	if !found {
		return http.NotFound("route not found")
	}

	if h.plain != nil {
		return h.plain(request)
	}

	if r.state == nil {
		return http.InternalError("user data not set")
	}

	return h.stateful(request, r.state)
}

func must(err error) {
	if err != nil {
		panic(err.Error())
	}
}
