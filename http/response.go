package http

import (
	"github.com/cobalt-web/cobalt/http/status"
	"github.com/cobalt-web/cobalt/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const preallocRespHeaders = 5

// Fields is the actual set of values a Response carries. The serializer
// consumes it directly.
type Fields struct {
	Version string
	Code    status.Code
	Status  status.Status
	Headers []kv.Pair
	Body    []byte
}

// Response is a builder over response Fields. Status defaults to 200 OK and
// the version to HTTP/1.1. Content-Length is not a concern of the builder, as
// the serializer derives it from the body unconditionally.
type Response struct {
	fields Fields
}

func NewResponse() *Response {
	return &Response{
		Fields{
			Version: "HTTP/1.1",
			Code:    status.OK,
			Headers: make([]kv.Pair, 0, preallocRespHeaders),
		},
	}
}

// Version overrides the protocol version on the status line.
func (r *Response) Version(version string) *Response {
	r.fields.Version = version
	return r
}

// Code sets a response code. The reason phrase stays derived from the code
// unless overridden via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom reason phrase. Clients tend to ignore it completely,
// so there are few reasons to use this except cosmetics.
func (r *Response) Status(s status.Status) *Response {
	r.fields.Status = s
	return r
}

// Header appends a header pair. Pairs are serialized in the order they were
// added, after the implicit Content-Length.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers = append(r.fields.Headers, kv.Pair{Key: key, Value: value})
	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to the passed slice WITHOUT copying. Changing
// the slice later will affect the response.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer by appending to the body. It always returns
// n=len(b) and err=nil.
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON serializes the model into the response body and sets the
// Content-Type accordingly.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = r.fields.Body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.Header("Content-Type", "application/json"), err
}

// JSON does the same as TryJSON, except an encoding failure degrades the
// response to a 500.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return InternalError(err.Error())
	}

	return resp
}

// Reveal grants access to the response fields.
func (r *Response) Reveal() *Fields {
	return &r.fields
}

// OK returns a new 200 response with the passed body.
func OK(body string) *Response {
	return NewResponse().String(body)
}

// NotFound returns a new 404 response with the passed message as its body.
func NotFound(message string) *Response {
	return NewResponse().Code(status.NotFound).String(message)
}

// Forbidden returns a new 403 response with the passed message as its body.
func Forbidden(message string) *Response {
	return NewResponse().Code(status.Forbidden).String(message)
}

// InternalError returns a new 500 response with the passed message as its body.
func InternalError(message string) *Response {
	return NewResponse().Code(status.InternalServerError).String(message)
}

// Error translates an error into a response. status.HTTPError carries its own
// code, anything else is treated as a 500.
func Error(err error) *Response {
	if http, ok := err.(status.HTTPError); ok {
		return NewResponse().Code(http.Code).String(http.Message)
	}

	return InternalError(err.Error())
}
