package transport

import (
	"net"
	"time"
)

// Client is a byte stream over a single connection. Read returns an arbitrary
// non-empty piece of data; whatever the consumer didn't use can be preserved
// for the next Read via Pushback.
type Client interface {
	Read() ([]byte, error)
	Pushback([]byte)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	pending []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		timeout: timeout,
	}
}

// Read reads data into the internal buffer and returns a piece of it back.
// Timeouts are handled automatically.
func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	if n > 0 {
		// a read may return data along with an error. The error will repeat
		// itself on the next call anyway, so serve the data first
		return c.buff[:n], nil
	}

	return nil, err
}

// Pushback preserves a chunk of data from a previous read for the next read.
func (c *client) Pushback(b []byte) {
	c.pending = b
}

// Write writes data into the underlying connection.
func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)
	return err
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}
