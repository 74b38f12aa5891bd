package testfs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func NewTempDir(t *testing.T) (string, func()) {
	dir, err := os.MkdirTemp("", "nimiqtest_")
	require.NoError(t, err)
	return dir, func() {
		require.NoError(t, os.RemoveAll(dir))
	}
}

func NewTempFile(t *testing.T) (*os.File, func()) {
	f, err := os.CreateTemp("", "nimiqtest_")
	require.NoError(t, err)
	return f, func() {
		require.NoError(t, f.Close())
		require.NoError(t, os.Remove(f.Name()))
	}
}

// WriteFile writes contents to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir string, name string, contents string) string {
	p := dir + string(os.PathSeparator) + name
	require.NoError(t, os.WriteFile(p, []byte(contents), 0600))
	return p
}
