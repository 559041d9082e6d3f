package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("get missing", func(t *testing.T) {
		s := New()
		value, found := s.Get("Host")
		require.Empty(t, value)
		require.False(t, found)
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		s := New().Add("Content-Length", "13")
		value, found := s.Get("content-length")
		require.True(t, found)
		require.Equal(t, "13", value)
	})

	t.Run("set overrides", func(t *testing.T) {
		s := New().Set("Host", "localhost")
		s.Set("host", "127.0.0.1")
		require.Equal(t, 1, s.Len())
		require.Equal(t, "127.0.0.1", s.Value("Host"))
		// the first spelling of the key survives
		require.Equal(t, "Host", s.Expose()[0].Key)
	})

	t.Run("add keeps duplicates", func(t *testing.T) {
		s := New().Add("Accept", "text/html").Add("Accept", "text/plain")
		require.Equal(t, 2, s.Len())
		require.Equal(t, "text/html", s.Value("Accept"))
	})

	t.Run("iter", func(t *testing.T) {
		s := NewPrealloc(2).Add("a", "1").Add("b", "2")

		var pairs []Pair
		for key, value := range s.Iter() {
			pairs = append(pairs, Pair{key, value})
		}

		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, pairs)
	})
}
