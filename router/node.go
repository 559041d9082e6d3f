package router

import (
	"strings"

	"github.com/cobalt-web/cobalt/http"
	"github.com/cobalt-web/cobalt/http/method"
)

// node is a single level of the route trie, holding one child per static
// segment literal, at most one parameter child and at most one wildcard
// child. Handlers live on the node the last pattern segment lands on; a
// wildcard child is always terminal.
type node[T any] struct {
	handlers  map[method.Method]handler[T]
	static    map[string]*node[T]
	paramName string
	param     *node[T]
	wildcard  *node[T]
}

func newNode[T any]() *node[T] {
	return &node[T]{
		handlers: make(map[method.Method]handler[T]),
	}
}

func (n *node[T]) insert(m method.Method, segments []string, h handler[T]) error {
	if len(segments) == 0 {
		// duplicate registrations of the same pattern and method simply
		// override each other
		n.handlers[m] = h
		return nil
	}

	segment := segments[0]

	switch {
	case segment == "*":
		if len(segments) > 1 {
			return ErrTrailingSegments
		}

		if n.wildcard == nil {
			n.wildcard = newNode[T]()
		}

		n.wildcard.handlers[m] = h

		return nil
	case strings.HasPrefix(segment, ":"):
		name := segment[1:]
		if n.param != nil && n.paramName != name {
			return ErrAmbiguousParameter
		}

		if n.param == nil {
			n.param = newNode[T]()
			n.paramName = name
		}

		return n.param.insert(m, segments[1:], h)
	default:
		if n.static == nil {
			n.static = make(map[string]*node[T])
		}

		child := n.static[segment]
		if child == nil {
			child = newNode[T]()
			n.static[segment] = child
		}

		return child.insert(m, segments[1:], h)
	}
}

// match descends the trie over the path segments, trying a static child
// first, then the parameter child, then the wildcard. A failed descent
// backtracks to the next candidate, and parameters are bound only along the
// branch that actually resolved to a handler.
func (n *node[T]) match(request *http.Request, segments []string) (handler[T], bool) {
	if len(segments) == 0 {
		h, found := n.handlers[request.Method]
		return h, found
	}

	segment := segments[0]

	if child, found := n.static[segment]; found {
		if h, found := child.match(request, segments[1:]); found {
			return h, true
		}
	}

	if n.param != nil && len(segment) > 0 {
		if h, found := n.param.match(request, segments[1:]); found {
			request.Params.Set(n.paramName, segment)
			return h, true
		}
	}

	if n.wildcard != nil {
		if h, found := n.wildcard.handlers[request.Method]; found {
			request.Params.Set("*", strings.Join(segments, "/"))
			return h, true
		}
	}

	return handler[T]{}, false
}
