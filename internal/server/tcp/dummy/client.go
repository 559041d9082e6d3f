package dummy

import (
	"io"
	"net"
)

// Client replays a fixed sequence of chunks and records everything written
// back, imitating a remote peer that sent its whole request and hung up.
type Client struct {
	chunks  [][]byte
	pointer int
	pending []byte
	written []byte
	closed  bool
}

func NewClient(chunks ...[]byte) *Client {
	return &Client{
		chunks: chunks,
	}
}

// NewSplitClient cuts the data into n-sized chunks, imitating a peer whose
// request arrives in arbitrarily small reads.
func NewSplitClient(data []byte, n int) *Client {
	var chunks [][]byte

	for i := 0; i < len(data); i += n {
		end := i + n
		if end > len(data) {
			end = len(data)
		}

		chunks = append(chunks, data[i:end])
	}

	return NewClient(chunks...)
}

func (c *Client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	for c.pointer < len(c.chunks) {
		chunk := c.chunks[c.pointer]
		c.pointer++

		if len(chunk) > 0 {
			return chunk, nil
		}
	}

	return nil, io.EOF
}

func (c *Client) Pushback(b []byte) {
	c.pending = b
}

func (c *Client) Write(b []byte) error {
	c.written = append(c.written, b...)
	return nil
}

// Written returns everything the server has sent so far.
func (c *Client) Written() []byte {
	return c.written
}

func (c *Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Closed tells whether the server has hung up.
func (c *Client) Closed() bool {
	return c.closed
}
