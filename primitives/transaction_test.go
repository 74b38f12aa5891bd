package primitives

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const minedTx = `{
	"hash": "78957b87ab5546e11e9540ce5a37ebbf93a0ebd73c0ce05f137288f30ee9f430",
	"blockHash": "7c5a5d8ef6b4e49c5e4d3f2b9d1e0ad4c4e1e5c6b6d7e8f9a0b1c2d3e4f5a6b7",
	"blockNumber": 1200000,
	"timestamp": 1588000000,
	"confirmations": 12,
	"transactionIndex": 3,
	"from": "0102030405060708090a0b0c0d0e0f1011121314",
	"fromAddress": "NQ98 0410 6105 0Q3G G28A 1C60 S3GF 208H 44QL",
	"to": "ffffffffffffffffffffffffffffffffffffffff",
	"toAddress": "NQ18 YYYY YYYY YYYY YYYY YYYY YYYY YYYY YYYY",
	"value": 800000,
	"fee": 138,
	"data": "68656c6c6f",
	"flags": 0
}`

func TestTransaction_Mined(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(minedTx), &tx))
	require.False(t, tx.Pending())
	require.Equal(t, int64(1200000), tx.Block.Number)
	require.Equal(t, 3, tx.Block.Index)
	require.Equal(t, 12, tx.Block.Confirmations)
	require.Equal(t, testID, tx.From.Hex())
	require.Equal(t, "NQ18 YYYY YYYY YYYY YYYY YYYY YYYY YYYY YYYY", tx.To.Friendly())
	require.EqualValues(t, 800000, tx.Value)
	require.EqualValues(t, 138, tx.Fee)
	require.Equal(t, []byte("hello"), tx.DataBytes())
	require.False(t, tx.IsContractCreation())
}

func TestTransaction_Pending(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{
		"hash": "aa",
		"fromAddress": "`+testFriendly+`",
		"to": "`+testID+`",
		"value": 1,
		"fee": 0,
		"flags": 1
	}`), &tx))
	require.True(t, tx.Pending())
	require.Nil(t, tx.Block)
	require.Equal(t, testID, tx.From.Hex())
	require.Equal(t, testFriendly, tx.To.Friendly())
	require.True(t, tx.IsContractCreation())
	require.Nil(t, tx.DataBytes())
}

func TestTransaction_Invalid(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal([]byte(`{"from": "`+testID+`", "fromAddress": "`+zeroFriendly+`"}`), &tx)
	require.Error(t, err)
	err = json.Unmarshal([]byte(`{"data": "xyz"}`), &tx)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "data", fe.Field)
}

func TestRawTransactionInfo(t *testing.T) {
	var info RawTransactionInfo
	require.NoError(t, json.Unmarshal([]byte(`{"hash": "aa", "value": 5, "inMempool": true}`), &info))
	require.True(t, info.Valid)
	require.True(t, info.InMempool)
	require.EqualValues(t, 5, info.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"hash": "aa", "valid": false}`), &info))
	require.False(t, info.Valid)
	require.False(t, info.InMempool)
}

func TestTransactionRef(t *testing.T) {
	var refs []TransactionRef
	require.NoError(t, json.Unmarshal([]byte(`["aa", `+minedTx+`]`), &refs))
	require.Len(t, refs, 2)
	require.Equal(t, "aa", refs[0].Hash)
	require.Nil(t, refs[0].Transaction)
	require.Equal(t, "78957b87ab5546e11e9540ce5a37ebbf93a0ebd73c0ce05f137288f30ee9f430", refs[1].Hash)
	require.NotNil(t, refs[1].Transaction)

	require.Error(t, json.Unmarshal([]byte(`[12]`), &refs))
}

func TestBlock(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(`{
		"number": 1200000,
		"hash": "7c5a5d8ef6b4e49c5e4d3f2b9d1e0ad4c4e1e5c6b6d7e8f9a0b1c2d3e4f5a6b7",
		"pow": "0000000000000a9c",
		"parentHash": "aa",
		"nonce": 4054931286,
		"bodyHash": "bb",
		"accountsHash": "cc",
		"miner": "`+testID+`",
		"difficulty": "263087.29347985",
		"extraData": "",
		"size": 576,
		"timestamp": 1588000000,
		"confirmations": 3,
		"transactions": [`+minedTx+`, "dd"]
	}`), &block))
	require.EqualValues(t, 1200000, block.Number)
	require.Equal(t, uint32(4054931286), block.Nonce)
	require.Equal(t, testFriendly, block.Miner.Friendly())
	require.Equal(t, "263087.29347985", block.Difficulty.String())
	require.Equal(t, []string{"78957b87ab5546e11e9540ce5a37ebbf93a0ebd73c0ce05f137288f30ee9f430", "dd"}, block.TransactionHashes())
	require.Len(t, block.FullTransactions(), 1)
	require.EqualValues(t, 1588000000, block.Time().Unix())
}

func TestBlock_ExtraData(t *testing.T) {
	long := make([]byte, 2*(MaxExtraDataSize+1))
	for i := range long {
		long[i] = 'a'
	}
	var block Block
	err := json.Unmarshal([]byte(`{"extraData": "`+string(long)+`"}`), &block)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "extraData", fe.Field)

	require.NoError(t, json.Unmarshal([]byte(`{"extraData": "`+string(long[2:])+`"}`), &block))
	require.Empty(t, block.Transactions)
}

func TestTransactionReceipt(t *testing.T) {
	var receipt TransactionReceipt
	require.NoError(t, json.Unmarshal([]byte(`{
		"transactionHash": "aa",
		"transactionIndex": -1,
		"blockHash": "bb",
		"blockNumber": 11,
		"confirmations": 2,
		"timestamp": 1523412456
	}`), &receipt))
	require.Equal(t, -1, receipt.TransactionIndex)
	require.EqualValues(t, 11, receipt.BlockNumber)
}
