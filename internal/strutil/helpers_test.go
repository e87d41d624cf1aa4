package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLStripWS(t *testing.T) {
	require.Equal(t, "localhost", LStripWS(" localhost"))
	require.Equal(t, "localhost  ", LStripWS(" \t localhost  "))
	require.Equal(t, "value", LStripWS(" value"))
	require.Equal(t, "value", LStripWS("value"))
	require.Empty(t, LStripWS("   "))
	require.Empty(t, LStripWS(""))
}

func TestCutLine(t *testing.T) {
	t.Run("CRLF", func(t *testing.T) {
		line, rest := CutLine("GET / HTTP/1.1\r\nHost: localhost\r\n")
		require.Equal(t, "GET / HTTP/1.1", line)
		require.Equal(t, "Host: localhost\r\n", rest)
	})

	t.Run("LF", func(t *testing.T) {
		line, rest := CutLine("hello\nworld")
		require.Equal(t, "hello", line)
		require.Equal(t, "world", rest)
	})

	t.Run("no terminator", func(t *testing.T) {
		line, rest := CutLine("hello")
		require.Equal(t, "hello", line)
		require.Empty(t, rest)
	})

	t.Run("empty line", func(t *testing.T) {
		line, rest := CutLine("\r\nbody")
		require.Empty(t, line)
		require.Equal(t, "body", rest)
	})
}
