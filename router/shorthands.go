package router

import "github.com/cobalt-web/cobalt/http/method"

// Shorthands for every supported method, in plain and stateful flavors. All
// of them panic on a malformed pattern, which is reasonable given routes are
// registered at startup from constants; use Route or RouteState to handle
// the error instead.

func (r *Router[T]) Get(pattern string, h Handler) *Router[T] {
	must(r.Route(method.GET, pattern, h))
	return r
}

func (r *Router[T]) Head(pattern string, h Handler) *Router[T] {
	must(r.Route(method.HEAD, pattern, h))
	return r
}

func (r *Router[T]) Post(pattern string, h Handler) *Router[T] {
	must(r.Route(method.POST, pattern, h))
	return r
}

func (r *Router[T]) Put(pattern string, h Handler) *Router[T] {
	must(r.Route(method.PUT, pattern, h))
	return r
}

func (r *Router[T]) Delete(pattern string, h Handler) *Router[T] {
	must(r.Route(method.DELETE, pattern, h))
	return r
}

func (r *Router[T]) Connect(pattern string, h Handler) *Router[T] {
	must(r.Route(method.CONNECT, pattern, h))
	return r
}

func (r *Router[T]) Options(pattern string, h Handler) *Router[T] {
	must(r.Route(method.OPTIONS, pattern, h))
	return r
}

func (r *Router[T]) Trace(pattern string, h Handler) *Router[T] {
	must(r.Route(method.TRACE, pattern, h))
	return r
}

func (r *Router[T]) Patch(pattern string, h Handler) *Router[T] {
	must(r.Route(method.PATCH, pattern, h))
	return r
}

func (r *Router[T]) GetState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.GET, pattern, h))
	return r
}

func (r *Router[T]) HeadState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.HEAD, pattern, h))
	return r
}

func (r *Router[T]) PostState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.POST, pattern, h))
	return r
}

func (r *Router[T]) PutState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.PUT, pattern, h))
	return r
}

func (r *Router[T]) DeleteState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.DELETE, pattern, h))
	return r
}

func (r *Router[T]) ConnectState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.CONNECT, pattern, h))
	return r
}

func (r *Router[T]) OptionsState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.OPTIONS, pattern, h))
	return r
}

func (r *Router[T]) TraceState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.TRACE, pattern, h))
	return r
}

func (r *Router[T]) PatchState(pattern string, h StateHandler[T]) *Router[T] {
	must(r.RouteState(method.PATCH, pattern, h))
	return r
}
