package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	for level, name := range levelNames {
		parsed, err := NewLevel(name)
		require.NoError(t, err)
		require.Equal(t, level, parsed)
		require.Equal(t, name, parsed.String())
	}

	parsed, err := NewLevel(" WARN ")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, parsed)

	_, err = NewLevel("verbose")
	require.Error(t, err)
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})
	SetLevel(LevelDebug)
	defer SetLevel(LevelTrace)

	lgr := WithModule("rpc")
	lgr.Trace("hidden")
	require.Empty(t, buf.String())

	lgr.Info("call failed", "method", "peerCount", "err", ErrInvalidLevel)
	out := buf.String()
	require.Contains(t, out, "module=rpc")
	require.Contains(t, out, "method=peerCount")
	require.Contains(t, out, "invalid log level")

	require.Panics(t, func() {
		lgr.Info("odd", "key")
	})
	require.Panics(t, func() {
		lgr.Info("bad key", 1, "value")
	})
}
