package cobalt

import (
	"log"
	"net"

	"github.com/cobalt-web/cobalt/config"
	httpserver "github.com/cobalt-web/cobalt/internal/server/http"
	"github.com/cobalt-web/cobalt/router"
	"github.com/cobalt-web/cobalt/transport"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// App glues the pieces together: it binds the listening socket, spawns a
// goroutine per accepted connection and hands each one to the HTTP server.
type App struct {
	addr    string
	cfg     *config.Config
	logger  Logger
	tcp     *transport.TCP
	onStart func()
}

// New returns an App that will listen on addr once served.
func New(addr string) *App {
	return &App{
		addr:   addr,
		cfg:    config.Default(),
		logger: log.Default(),
		tcp:    transport.NewTCP(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Log replaces the default error logger.
func (a *App) Log(logger Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback once the socket is bound, right before the
// accept loop starts.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Addr returns the address the app is bound to. Valid only while serving.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve binds the socket and runs the accept loop until Stop is called or the
// listener fails. Bind failures are returned immediately; per-connection
// failures are logged and never interrupt the loop. On return, all the live
// connections have been drained.
func (a *App) Serve(d router.Dispatcher) error {
	if err := a.tcp.Bind(a.addr); err != nil {
		return err
	}
	defer a.tcp.Close()

	if a.onStart != nil {
		a.onStart()
	}

	server := httpserver.NewServer(d, a.cfg, a.logger)

	err := a.tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		buff := make([]byte, a.cfg.NET.ReadBufferSize)
		server.ServeConn(transport.NewClient(conn, a.cfg.NET.ReadTimeout, buff))
	})

	a.tcp.Wait()

	return err
}

// Stop interrupts the accept loop. Connections in flight are given the chance
// to finish, which Serve awaits before returning.
func (a *App) Stop() {
	a.tcp.Stop()
}
