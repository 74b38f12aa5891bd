package primitives

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutgoingTransaction_Validate(t *testing.T) {
	from, err := ParseHexAddress(testID)
	require.NoError(t, err)
	to, err := ParseHexAddress("ffffffffffffffffffffffffffffffffffffffff")
	require.NoError(t, err)

	tx := &OutgoingTransaction{From: from, To: to, Value: 800000, Fee: 138}
	require.NoError(t, tx.Validate())

	invalid := []struct {
		mutate func(tx *OutgoingTransaction)
		err    string
	}{
		{func(tx *OutgoingTransaction) { tx.From = ZeroAddress }, "From failed required"},
		{func(tx *OutgoingTransaction) { tx.Value = 0 }, "Value failed gt"},
		{func(tx *OutgoingTransaction) { tx.Fee = -1 }, "Fee failed gte"},
		{func(tx *OutgoingTransaction) { tx.ToType = 3 }, "ToType failed lte"},
		{func(tx *OutgoingTransaction) { tx.Data = "nothex" }, "Data failed hexadecimal"},
	}
	for _, test := range invalid {
		cp := *tx
		test.mutate(&cp)
		err := cp.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), test.err)
	}
}

func TestOutgoingTransaction_ValidateConcurrent(t *testing.T) {
	from, err := ParseHexAddress(testID)
	require.NoError(t, err)
	valid := OutgoingTransaction{From: from, To: from, Value: 1}
	invalid := OutgoingTransaction{From: from, To: from}

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx := valid
			if i%2 == 1 {
				tx = invalid
			}
			errs[i] = tx.Validate()
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if i%2 == 1 {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
	}
}

func TestOutgoingTransaction_MarshalJSON(t *testing.T) {
	from, err := ParseHexAddress(testID)
	require.NoError(t, err)

	b, err := json.Marshal(&OutgoingTransaction{From: from, To: ZeroAddress, Value: 800000, Fee: 138})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"from": "`+testFriendly+`",
		"to": "`+zeroFriendly+`",
		"value": 800000,
		"fee": 138
	}`, string(b))

	b, err = json.Marshal(&OutgoingTransaction{From: from, ToType: AccountTypeHTLC, Value: 1, Data: "00ff", Flags: FlagContractCreation})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"from": "`+testFriendly+`",
		"to": "`+zeroFriendly+`",
		"toType": 2,
		"value": 1,
		"fee": 0,
		"data": "00ff",
		"flags": 1
	}`, string(b))
}
