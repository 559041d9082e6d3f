package config

import "time"

type (
	// Limit is a pair of a default (pre-allocated) and a maximal value for a
	// growable buffer.
	Limit struct {
		Default, Maximal int
	}

	URI struct {
		// RequestLineSize bounds the buffer storing the request line.
		RequestLineSize Limit
	}

	Headers struct {
		// Space limits the amount of memory occupied by request headers.
		Space Limit
		// Number is the maximal number of headers allowed in a single request.
		Number int
		// ValuePrealloc is the initial capacity of the request headers storage.
		ValuePrealloc int
	}

	Body struct {
		// MaxSize discards any request whose Content-Length exceeds it.
		MaxSize int
	}

	NET struct {
		// ReadBufferSize is the size of the buffer used to read from a socket.
		ReadBufferSize int
		// WriteBufferSize is the initial size of the response serialization buffer.
		WriteBufferSize int
		// ReadTimeout bounds every single read from a connection. As a request
		// is processed within the connection's goroutine, it effectively also
		// bounds the time a single request may take.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often the Accept() call is
		// interrupted in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
	}
)

// Config holds tunables used across cobalt, mainly restrictions, limitations
// and pre-allocations. Always modify defaults (returned via Default()) instead
// of instantiating the struct manually.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns a well-balanced default config.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: Limit{
				Default: 2 * 1024,
				// most web entities limit the request line to 4-8kb, so 16kb
				// is pretty much tolerant
				Maximal: 16 * 1024,
			},
		},
		Headers: Headers{
			Space: Limit{
				Default: 1 * 1024,
				Maximal: 16 * 1024, // there might be extremely long cookies
			},
			Number:        50,
			ValuePrealloc: 10,
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			WriteBufferSize:           2 * 1024,
			ReadTimeout:               5 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
