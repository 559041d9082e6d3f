package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, m := range List {
		require.Equal(t, m, Parse(m.String()))
	}
}

func TestParseUnknown(t *testing.T) {
	for _, str := range []string{"", "get", "Get", "GEt", "LOOKUP", "GETT", "NOT_A_METHOD"} {
		require.Equal(t, Unknown, Parse(str), str)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "PATCH", PATCH.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, Count, len(List))
}
