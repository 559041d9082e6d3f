package http

import (
	"io"

	"github.com/cobalt-web/cobalt/config"
	"github.com/cobalt-web/cobalt/http"
	"github.com/cobalt-web/cobalt/internal/transport/http1"
	"github.com/cobalt-web/cobalt/router"
	"github.com/cobalt-web/cobalt/transport"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// Server drives a single connection through its request/response cycle: parse
// one request, dispatch it, write the response back and hang up. Malformed
// requests are logged and the connection is dropped without a response.
type Server struct {
	router router.Dispatcher
	cfg    *config.Config
	logger Logger
}

func NewServer(r router.Dispatcher, cfg *config.Config, logger Logger) *Server {
	return &Server{
		router: r,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Server) ServeConn(client transport.Client) {
	defer func() {
		_ = client.Close()
	}()

	request := http.NewRequest()
	parser := http1.NewParser(client, s.cfg)

	if err := parser.Parse(request); err != nil {
		if err != io.EOF {
			s.logger.Printf("%s: dropping request: %v", remote(client), err)
		}

		return
	}

	response := s.router.OnRequest(request)

	serializer := http1.NewSerializer(s.cfg.NET.WriteBufferSize)
	if err := serializer.Write(response, client); err != nil {
		s.logger.Printf("%s: writing response: %v", remote(client), err)
	}
}

func remote(client transport.Client) string {
	if addr := client.Remote(); addr != nil {
		return addr.String()
	}

	return "unknown peer"
}
