package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	buf := new(bytes.Buffer)
	p := NewPrinter(buf, FormatJSON)
	rendered := false
	require.NoError(t, p.Print(map[string]int{"peers": 3}, func() { rendered = true }))
	require.False(t, rendered)
	require.JSONEq(t, `{"peers": 3}`, buf.String())

	buf.Reset()
	p = NewPrinter(buf, FormatTable)
	require.NoError(t, p.Print(nil, func() {
		p.Table([]string{"Key", "Value"}, [][]string{{"Peer Count", "3"}})
	}))
	require.Contains(t, buf.String(), "VALUE")
	require.Contains(t, buf.String(), "Peer Count")
}

func TestArgOrStdin(t *testing.T) {
	v, err := ArgOrStdin([]string{"a", " 00ff "}, 1, "")
	require.NoError(t, err)
	require.Equal(t, "00ff", v)
}
