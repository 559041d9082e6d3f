package cobalt_test

import (
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/cobalt-web/cobalt"
	"github.com/cobalt-web/cobalt/config"
	"github.com/cobalt-web/cobalt/http"
	"github.com/cobalt-web/cobalt/router"
	"github.com/stretchr/testify/require"
)

func exchange(t *testing.T, addr, raw string) string {
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	// the server hangs up after a single response
	response, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(response)
}

func TestServe(t *testing.T) {
	r := router.New().
		Get("/hello", func(*http.Request) *http.Response {
			return http.OK("hello world")
		}).
		Post("/echo", func(request *http.Request) *http.Response {
			return http.NewResponse().Bytes(request.Body)
		}).
		Get("/greet/:name", func(request *http.Request) *http.Response {
			return http.OK("hi, " + request.Params.Value("name"))
		})

	cfg := config.Default()
	cfg.NET.AcceptLoopInterruptPeriod = 50 * time.Millisecond

	started := make(chan struct{})
	app := cobalt.New("127.0.0.1:0").
		Tune(cfg).
		NotifyOnStart(func() { close(started) })

	served := make(chan error, 1)
	go func() {
		served <- app.Serve(r)
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}
	addr := app.Addr().String()

	t.Run("get", func(t *testing.T) {
		response := exchange(t, addr, "GET /hello HTTP/1.1\r\nHost: cobalt\r\n\r\n")
		require.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\nContent-Length: 11\r\n"))
		require.True(t, strings.HasSuffix(response, "\r\n\r\nhello world"))
	})

	t.Run("echo", func(t *testing.T) {
		response := exchange(t, addr, "POST /echo HTTP/1.1\r\nContent-Length: 9\r\n\r\numbrellas")
		require.True(t, strings.HasSuffix(response, "\r\n\r\numbrellas"))
	})

	t.Run("path params", func(t *testing.T) {
		response := exchange(t, addr, "GET /greet/odin HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasSuffix(response, "\r\n\r\nhi, odin"))
	})

	t.Run("route miss", func(t *testing.T) {
		response := exchange(t, addr, "DELETE /hello HTTP/1.1\r\n\r\n")
		require.True(t, strings.HasPrefix(response, "HTTP/1.1 404 Not Found\r\n"))
		require.True(t, strings.HasSuffix(response, "route not found"))
	})

	t.Run("malformed request is dropped", func(t *testing.T) {
		response := exchange(t, addr, "NONSENSE\r\n\r\n")
		require.Empty(t, response)
	})

	app.Stop()
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeBindFailure(t *testing.T) {
	require.Error(t, cobalt.New("256.0.0.1:99999").Serve(router.New()))
}
