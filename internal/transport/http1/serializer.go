package http1

import (
	"strconv"

	"github.com/cobalt-web/cobalt/http"
	"github.com/cobalt-web/cobalt/http/status"
	"github.com/cobalt-web/cobalt/transport"
)

const (
	sp            = ' '
	crlf          = "\r\n"
	colonsp       = ": "
	contentLength = "Content-Length: "
)

// Serializer renders a response into its wire form: the status line, then a
// Content-Length header derived from the actual body, then user headers in
// insertion order, a blank line and the body.
type Serializer struct {
	buff []byte
}

func NewSerializer(buffSize int) *Serializer {
	return &Serializer{
		buff: make([]byte, 0, buffSize),
	}
}

// Write serializes the response and sends it to the client in a single call.
func (s *Serializer) Write(response *http.Response, client transport.Client) error {
	return client.Write(s.Serialize(response))
}

// Serialize renders the response. The returned slice is valid until the next
// call.
func (s *Serializer) Serialize(response *http.Response) []byte {
	fields := response.Reveal()
	s.buff = s.buff[:0]

	s.renderStatusLine(fields)
	s.renderContentLength(len(fields.Body))

	for _, header := range fields.Headers {
		s.buff = append(s.buff, header.Key...)
		s.buff = append(s.buff, colonsp...)
		s.buff = append(s.buff, header.Value...)
		s.buff = append(s.buff, crlf...)
	}

	s.buff = append(s.buff, crlf...)
	s.buff = append(s.buff, fields.Body...)

	return s.buff
}

func (s *Serializer) renderStatusLine(fields *http.Fields) {
	reason := fields.Status
	if len(reason) == 0 {
		reason = status.Text(fields.Code)
	}

	s.buff = append(s.buff, fields.Version...)
	s.buff = append(s.buff, sp)
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.buff = append(s.buff, sp)
	s.buff = append(s.buff, reason...)
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) renderContentLength(length int) {
	s.buff = append(s.buff, contentLength...)
	s.buff = strconv.AppendInt(s.buff, int64(length), 10)
	s.buff = append(s.buff, crlf...)
}
