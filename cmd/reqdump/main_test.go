package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indigo-web/reqparse/http/status"
	"github.com/stretchr/testify/require"
)

const curlRequest = "GET /greeting HTTP/1.1\r\nHost: localhost\r\nAccept: */*\r\nUser-Agent: curl/7.79.1\r\n\r\ntest"

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func decode(t *testing.T, out string) dumpedRequest {
	var dumped dumpedRequest
	require.NoError(t, json.Unmarshal([]byte(out), &dumped))
	return dumped
}

func TestReqdump(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		out, _, err := execute(t, curlRequest)
		require.NoError(t, err)
		require.Equal(t, dumpedRequest{
			Method:   "GET",
			Proto:    "HTTP/1.1",
			Resource: "/greeting",
			Headers: map[string]string{
				"Host":       "localhost",
				"Accept":     "*/*",
				"User-Agent": "curl/7.79.1",
			},
			Body: "test",
		}, decode(t, out))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "request.txt")
		require.NoError(t, os.WriteFile(path, []byte("POST /upload HTTP/2.0\r\n\r\npayload"), 0o600))

		out, _, err := execute(t, "", path)
		require.NoError(t, err)
		dumped := decode(t, out)
		require.Equal(t, "POST", dumped.Method)
		require.Equal(t, "HTTP/2.0", dumped.Proto)
		require.Equal(t, "payload", dumped.Body)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("join body", func(t *testing.T) {
		out, _, err := execute(t, "GET / HTTP/1.1\r\n\r\na\r\nb", "--join-body")
		require.NoError(t, err)
		require.Equal(t, "a\nb", decode(t, out).Body)
	})

	t.Run("verbose", func(t *testing.T) {
		out, errOut, err := execute(t, "GET / HTTP/1.1\r\n\r\na\r\nb", "--verbose")
		require.NoError(t, err)
		require.Equal(t, "b", decode(t, out).Body)
		require.Contains(t, errOut, "discarding body line")
	})

	t.Run("malformed request line", func(t *testing.T) {
		out, errOut, err := execute(t, "GET HTTP/1.1\r\n\r\n")
		require.ErrorIs(t, err, status.ErrMalformedRequestLine)
		require.Empty(t, out)
		require.True(t, strings.HasPrefix(errOut, "400 Bad Request"), errOut)
	})

	t.Run("unknown tokens", func(t *testing.T) {
		out, _, err := execute(t, "DELETE / HTTP/3.0\r\n\r\n")
		require.NoError(t, err)
		dumped := decode(t, out)
		require.Equal(t, "UNKNOWN", dumped.Method)
		require.Equal(t, "UNKNOWN", dumped.Proto)
	})
}
