package primitives

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testID       = "0102030405060708090a0b0c0d0e0f1011121314"
	testFriendly = "NQ98 0410 6105 0Q3G G28A 1C60 S3GF 208H 44QL"
	zeroFriendly = "NQ07 0000 0000 0000 0000 0000 0000 0000 0000"
)

func TestDecodeAccount_Basic(t *testing.T) {
	acct, err := DecodeAccount([]byte(`{
		"id": "` + testID + `",
		"address": "` + testFriendly + `",
		"balance": 1200000,
		"type": 0
	}`))
	require.NoError(t, err)
	require.Equal(t, AccountTypeBasic, acct.Type())
	basic, ok := acct.(*BasicAccount)
	require.True(t, ok)
	require.Equal(t, testID, basic.Address.Hex())
	require.EqualValues(t, 1200000, basic.Balance)
}

func TestDecodeAccount_VestingIgnoresHTLCFields(t *testing.T) {
	acct, err := DecodeAccount([]byte(`{
		"id": "` + testID + `",
		"balance": 52500000000000,
		"type": 1,
		"owner": "ffffffffffffffffffffffffffffffffffffffff",
		"ownerAddress": "NQ18 YYYY YYYY YYYY YYYY YYYY YYYY YYYY YYYY",
		"vestingStart": 1,
		"vestingStepBlocks": 259200,
		"vestingStepAmount": 2625000000000,
		"vestingTotalAmount": 52500000000000,
		"sender": "` + testID + `",
		"hashRoot": "deadbeef",
		"timeout": 99
	}`))
	require.NoError(t, err)
	require.Equal(t, AccountTypeVesting, acct.Type())
	_, isHTLC := acct.(*HTLCAccount)
	require.False(t, isHTLC)

	vesting := acct.(*VestingAccount)
	require.Equal(t, testFriendly, vesting.Address.Friendly())
	require.Equal(t, "NQ18 YYYY YYYY YYYY YYYY YYYY YYYY YYYY YYYY", vesting.Owner.Friendly())
	require.EqualValues(t, 1, vesting.VestingStart)
	require.EqualValues(t, 259200, vesting.VestingStepBlocks)
	require.EqualValues(t, 2625000000000, vesting.VestingStepAmount)
	require.EqualValues(t, 52500000000000, vesting.VestingTotalAmount)
}

func TestDecodeAccount_HTLCIgnoresVestingFields(t *testing.T) {
	acct, err := DecodeAccount([]byte(`{
		"address": "` + testFriendly + `",
		"balance": 1000,
		"type": 2,
		"sender": "` + testID + `",
		"recipientAddress": "` + zeroFriendly + `",
		"hashRoot": "f2d1b1c8ef4f9aa0b8e5f5e04c7d2b1e",
		"hashCount": 1,
		"timeout": 1105605,
		"totalAmount": 1000,
		"owner": "ffffffffffffffffffffffffffffffffffffffff",
		"vestingStart": 7
	}`))
	require.NoError(t, err)
	_, isVesting := acct.(*VestingAccount)
	require.False(t, isVesting)

	htlc := acct.(*HTLCAccount)
	require.Equal(t, testID, htlc.Address.Hex())
	require.Equal(t, testFriendly, htlc.Sender.Friendly())
	require.True(t, htlc.Recipient.IsZero())
	require.Equal(t, 1, htlc.HashCount)
	require.EqualValues(t, 1105605, htlc.Timeout)
	require.EqualValues(t, 1000, htlc.TotalAmount)
}

func TestDecodeAccount_Invalid(t *testing.T) {
	tests := []struct {
		in  string
		err string
	}{
		{`{"id": "` + testID + `", "balance": 1}`, "field type: missing field"},
		{`{"id": "` + testID + `", "type": 3}`, "unrecognized AccountType value 3"},
		{`{"id": "` + testID + `", "address": "` + zeroFriendly + `", "type": 0}`, "does not match"},
		{`{"id": "nothex", "type": 0}`, "field id"},
		{`[]`, "cannot unmarshal"},
	}

	for _, test := range tests {
		_, err := DecodeAccount([]byte(test.in))
		require.Error(t, err)
		require.Contains(t, err.Error(), test.err)
	}
}

func TestAccountList(t *testing.T) {
	var list AccountList
	err := json.Unmarshal([]byte(`[
		{"id": "`+testID+`", "type": 0, "balance": 5},
		{"id": "`+testID+`", "type": 2, "sender": "`+testID+`"},
		{"id": "`+testID+`", "type": 1, "owner": "`+testID+`"}
	]`), &list)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.IsType(t, &BasicAccount{}, list[0])
	require.IsType(t, &HTLCAccount{}, list[1])
	require.IsType(t, &VestingAccount{}, list[2])
	require.EqualValues(t, 5, list[0].Info().Balance)

	err = json.Unmarshal([]byte(`[{"id": "`+testID+`", "type": 7}]`), &list)
	var enumErr *EnumError
	require.ErrorAs(t, err, &enumErr)
}
