package primitives

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAddress_Friendly(t *testing.T) {
	tests := []struct {
		hex      string
		friendly string
	}{
		{"0000000000000000000000000000000000000000", "NQ07 0000 0000 0000 0000 0000 0000 0000 0000"},
		{"ffffffffffffffffffffffffffffffffffffffff", "NQ18 YYYY YYYY YYYY YYYY YYYY YYYY YYYY YYYY"},
		{"0102030405060708090a0b0c0d0e0f1011121314", "NQ98 0410 6105 0Q3G G28A 1C60 S3GF 208H 44QL"},
		{"e6fe3ed0ec8b3b37e4f68fbd7e2f0b56a5dd1b57", "NQ85 UTY3 VL7C HCVK FR7N HXXP UBQB ASJV S6SP"},
	}

	for _, test := range tests {
		addr, err := ParseHexAddress(test.hex)
		require.NoError(t, err)
		require.Equal(t, test.friendly, addr.Friendly())
		require.Equal(t, test.hex, addr.Hex())

		parsed, err := ParseFriendlyAddress(test.friendly)
		require.NoError(t, err)
		require.Equal(t, addr, parsed)
	}
}

func TestParseFriendlyAddress(t *testing.T) {
	addr, err := ParseFriendlyAddress("nq9804106105 0q3gg28a1c60s3gf208h44ql")
	require.NoError(t, err)
	require.Equal(t, "0102030405060708090a0b0c0d0e0f1011121314", addr.Hex())

	invalid := []string{
		"",
		"NQ07 0000",
		"XX07 0000 0000 0000 0000 0000 0000 0000 0000",
		"NQ07 0000 0000 0000 0000 0000 0000 0000 000W",
	}
	for _, in := range invalid {
		_, err := ParseFriendlyAddress(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, ErrInvalidAddress), in)
	}

	_, err = ParseFriendlyAddress("NQ08 0000 0000 0000 0000 0000 0000 0000 0000")
	require.True(t, errors.Is(err, ErrAddressChecksum))
}

func TestParseAddress(t *testing.T) {
	a, err := ParseAddress("NQ07 0000 0000 0000 0000 0000 0000 0000 0000")
	require.NoError(t, err)
	require.True(t, a.IsZero())

	b, err := ParseAddress("0xffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	require.Equal(t, "NQ18 YYYY YYYY YYYY YYYY YYYY YYYY YYYY YYYY", b.String())

	_, err = ParseAddress("ffff")
	require.True(t, errors.Is(err, ErrInvalidAddress))
}

func TestAddressFromPublicKey(t *testing.T) {
	pub, err := hex.DecodeString("1d7c8a4b1b32dae15b2c7f1c5e4b5a3f8e2d9c0b1a29384756afbecd0f1e2d3c")
	require.NoError(t, err)
	addr, err := AddressFromPublicKey(pub)
	require.NoError(t, err)
	require.Equal(t, "8249b3901c9e55dddb414b087fb367687c57f2b6", addr.Hex())
	require.Equal(t, "NQ18 G94T 740U KRAV TNS1 9C47 YCT7 D1X5 FUMN", addr.Friendly())

	_, err = AddressFromPublicKey(pub[:31])
	require.Error(t, err)
}

func TestResolveAddress(t *testing.T) {
	const id = "0102030405060708090a0b0c0d0e0f1011121314"
	const friendly = "NQ98 0410 6105 0Q3G G28A 1C60 S3GF 208H 44QL"

	fromBoth, err := resolveAddress("from", id, friendly)
	require.NoError(t, err)
	fromID, err := resolveAddress("from", id, "")
	require.NoError(t, err)
	fromFriendly, err := resolveAddress("from", "", friendly)
	require.NoError(t, err)
	require.Equal(t, fromBoth, fromID)
	require.Equal(t, fromBoth, fromFriendly)

	none, err := resolveAddress("from", "", "")
	require.NoError(t, err)
	require.True(t, none.IsZero())

	_, err = resolveAddress("from", "ffffffffffffffffffffffffffffffffffffffff", friendly)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "from", fe.Field)

	_, err = resolveAddress("from", "", "NQ00 bogus")
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "fromAddress", fe.Field)
}
