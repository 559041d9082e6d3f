package query

import (
	"testing"

	"github.com/cobalt-web/cobalt/http/status"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string) *Params {
	params := NewParams()
	require.NoError(t, Parse(raw, params))
	return params
}

func TestParse(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		params := parse(t, "hello=world")
		require.Equal(t, 1, params.Len())
		require.Equal(t, "world", params.Value("hello"))
	})

	t.Run("flag, empty and ordinary values", func(t *testing.T) {
		params := parse(t, "query=rust&verbose&mode=")
		require.Equal(t, 3, params.Len())

		value, hasValue, found := params.Lookup("query")
		require.True(t, found)
		require.True(t, hasValue)
		require.Equal(t, "rust", value)

		value, hasValue, found = params.Lookup("verbose")
		require.True(t, found)
		require.False(t, hasValue)
		require.Empty(t, value)

		value, hasValue, found = params.Lookup("mode")
		require.True(t, found)
		require.True(t, hasValue)
		require.Empty(t, value)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		params := parse(t, " key = value ")
		require.Equal(t, "value", params.Value("key"))
		require.False(t, params.Has(" key "))
	})

	t.Run("repeated key overrides", func(t *testing.T) {
		params := parse(t, "key=first&key=second")
		require.Equal(t, 1, params.Len())
		require.Equal(t, "second", params.Value("key"))
	})

	t.Run("no percent-decoding", func(t *testing.T) {
		params := parse(t, "name=hello%20world")
		require.Equal(t, "hello%20world", params.Value("name"))
	})
}

func TestParseMalformed(t *testing.T) {
	for _, raw := range []string{"", "&", "a&&b", "&a=b", "a=b&", "a=b=c"} {
		err := Parse(raw, NewParams())
		require.ErrorIs(t, err, status.ErrBadQuery, raw)
	}
}
