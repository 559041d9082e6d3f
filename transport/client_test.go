package transport

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	server, peer := net.Pipe()
	defer server.Close()
	defer peer.Close()

	client := NewClient(server, time.Second, make([]byte, 16))

	go func() {
		_, _ = peer.Write([]byte("hello world"))
	}()

	data, err := client.Read()
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))

	// an unused tail comes back on the next read
	client.Pushback(data[5:])
	data, err = client.Read()
	require.NoError(t, err)
	require.Equal(t, " world", string(data))

	go func() {
		buff := make([]byte, 16)
		n, _ := peer.Read(buff)
		_, _ = peer.Write(buff[:n])
	}()

	require.NoError(t, client.Write([]byte("pong")))
	data, err = client.Read()
	require.NoError(t, err)
	require.Equal(t, "pong", string(data))
}

func TestClientReadTimeout(t *testing.T) {
	server, peer := net.Pipe()
	defer server.Close()
	defer peer.Close()

	client := NewClient(server, 10*time.Millisecond, make([]byte, 16))

	_, err := client.Read()
	require.Error(t, err)
}
