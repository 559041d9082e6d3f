package status

// HTTPError is an error with an HTTP status code attached. The parser reports
// malformed requests via the Err* sentinels below, so a caller can always tell
// which status the failure corresponds to, even if no response is ever written.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrBadQuery             = NewError(BadRequest, "malformed query string")
	ErrBadContentLength     = NewError(BadRequest, "malformed Content-Length")
	ErrUnexpectedEOF        = NewError(BadRequest, "stream ended in the middle of a request")
	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
	ErrTooLongRequestLine   = NewError(RequestURITooLong, "request line is too long")
	ErrHeaderFieldsTooLarge = NewError(HeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders       = NewError(HeaderFieldsTooLarge, "too many headers")
	ErrBodyTooLarge         = NewError(RequestEntityTooLarge, "request body is too large")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
)
