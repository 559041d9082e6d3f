package http1

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/cobalt-web/cobalt/config"
	"github.com/cobalt-web/cobalt/http"
	"github.com/cobalt-web/cobalt/http/method"
	"github.com/cobalt-web/cobalt/http/query"
	"github.com/cobalt-web/cobalt/http/status"
	"github.com/cobalt-web/cobalt/transport"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

// Parser reads a single request off a client stream. The stream is
// line-oriented with CRLF terminators: a request line of exactly three
// space-separated fields, header lines up to a blank one, and a body read if
// and only if Content-Length announced it. Parsed string fields point into
// the parser's buffers, so a request must not outlive the parser that
// produced it.
type Parser struct {
	client        transport.Client
	startLineBuff *buffer.Buffer
	headersBuff   *buffer.Buffer
	cfg           *config.Config
}

func NewParser(client transport.Client, cfg *config.Config) *Parser {
	return &Parser{
		client:        client,
		startLineBuff: buffer.New(cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal),
		headersBuff:   buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
		cfg:           cfg,
	}
}

// Parse fills the request in. io.EOF is returned iff the stream was closed
// before any bytes arrived, anything else malformed yields a status sentinel.
// Data buffered past the parsed request is discarded, so pipelining is not
// supported.
func (p *Parser) Parse(request *http.Request) error {
	request.Remote = p.client.Remote()

	if err := p.requestLine(request); err != nil {
		return err
	}

	if err := p.headers(request); err != nil {
		return err
	}

	return p.body(request)
}

func (p *Parser) requestLine(request *http.Request) error {
	line, err := p.readLine(p.startLineBuff, status.ErrTooLongRequestLine)
	if err != nil {
		return err
	}

	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return status.ErrBadRequest
	}

	request.Method = method.Parse(fields[0])
	if request.Method == method.Unknown {
		return status.ErrMethodNotImplemented
	}

	path, rawQuery, hasQuery := strings.Cut(fields[1], "?")
	if hasQuery {
		if strings.IndexByte(rawQuery, '?') != -1 {
			return status.ErrBadRequest
		}

		if err = query.Parse(rawQuery, request.Query); err != nil {
			return err
		}
	}

	request.Path = path
	request.Version = fields[2]

	return nil
}

func (p *Parser) headers(request *http.Request) error {
	for count := 0; ; count++ {
		line, err := p.readLine(p.headersBuff, status.ErrHeaderFieldsTooLarge)
		switch err {
		case nil:
		case io.EOF:
			// the blank line terminating the header block never arrived
			return status.ErrUnexpectedEOF
		default:
			return err
		}

		if len(line) == 0 {
			return nil
		}

		if count >= p.cfg.Headers.Number {
			return status.ErrTooManyHeaders
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			return status.ErrBadRequest
		}

		// values lacking the space after the colon are fine, the trim covers
		// both spellings
		request.Headers.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

func (p *Parser) body(request *http.Request) error {
	value, found := request.Headers.Get("Content-Length")
	if !found {
		// no Content-Length means no body, even if bytes are still buffered.
		// Relying on connection-close framing is deliberately unsupported
		return nil
	}

	length, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return status.ErrBadContentLength
	}

	if int(length) > p.cfg.Body.MaxSize {
		return status.ErrBodyTooLarge
	}

	if length == 0 {
		return nil
	}

	body := make([]byte, 0, length)
	for len(body) < int(length) {
		data, err := p.client.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		body = append(body, data...)
	}

	if len(body) > int(length) {
		body = body[:length]
	}

	request.Body = body

	return nil
}

// readLine accumulates stream chunks in buff until a line feed arrives and
// returns the line without its terminator. The line stays valid until the
// buffer is cleared. overflow is returned when the line doesn't fit the
// buffer's limit. io.EOF is returned only on a clean end of stream with no
// partial line pending.
func (p *Parser) readLine(buff *buffer.Buffer, overflow error) (string, error) {
	for {
		data, err := p.client.Read()
		if err == io.EOF {
			if buff.SegmentLength() == 0 {
				return "", io.EOF
			}

			return "", status.ErrUnexpectedEOF
		} else if err != nil {
			return "", err
		}

		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !buff.Append(data) {
				return "", overflow
			}

			continue
		}

		if !buff.Append(data[:lf]) {
			return "", overflow
		}

		p.client.Pushback(data[lf+1:])

		line := buff.Finish()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}

		return uf.B2S(line), nil
	}
}
