package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlake2B256(t *testing.T) {
	tests := []struct {
		in  []string
		out string
	}{
		{
			[]string{""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"", "", "", ""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"cafe"},
			"4e400278c29c37ee640391dfb9792390a8ac9adb6200ed47c725a86099a8586c",
		},
		{
			[]string{"0000000000000000000000000000000000000000000000000000000000000000"},
			"89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3",
		},
		{
			[]string{"00000000000000000000000000000000", "00000000000000000000000000000000"},
			"89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3",
		},
	}
	for _, tt := range tests {
		var pieces [][]byte
		for _, hexPiece := range tt.in {
			piece, err := hex.DecodeString(hexPiece)
			require.NoError(t, err)
			pieces = append(pieces, piece)
		}
		out := Blake2B256(pieces...).String()
		require.Equal(t, tt.out, out)
	}
}

func TestNewHashFromHex(t *testing.T) {
	valid := "89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3"
	h, err := NewHashFromHex(valid)
	require.NoError(t, err)
	require.Equal(t, valid, h.String())
	require.False(t, h.IsZero())

	_, err = NewHashFromHex("zz" + valid[2:])
	require.Error(t, err)
	_, err = NewHashFromHex(valid[:62])
	require.Error(t, err)
	require.Error(t, ValidateHashHex(""))
	require.NoError(t, ValidateHashHex(strings.ToUpper(valid)))
}

func TestHash_Text(t *testing.T) {
	in := Blake2B256([]byte("cafe"))
	text, err := in.MarshalText()
	require.NoError(t, err)
	var out Hash
	require.NoError(t, out.UnmarshalText(text))
	require.Equal(t, in, out)
}
