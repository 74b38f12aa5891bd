package rpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	res, err := DecodeResponse("blockNumber", 3, []byte(`{"jsonrpc":"2.0","id":3,"result":1234}`))
	require.NoError(t, err)
	require.Equal(t, "1234", string(res))

	res, err = DecodeResponse("getBlockByHash", 3, []byte(`{"jsonrpc":"2.0","id":3,"result":null}`))
	require.NoError(t, err)
	require.True(t, IsNull(res))
}

func TestDecodeResponse_ErrorExcludesResult(t *testing.T) {
	res, err := DecodeResponse("getTransactionByHash", 3, []byte(`{
		"jsonrpc": "2.0",
		"id": 3,
		"result": {"hash": "aa"},
		"error": {"code": -32603, "message": "Transaction not found", "data": {"hash": "aa"}}
	}`))
	require.Nil(t, res)
	rpcErr, ok := AsRPCError(err)
	require.True(t, ok)
	require.Equal(t, -32603, rpcErr.Code)
	require.Equal(t, "Transaction not found", rpcErr.Message)
	require.JSONEq(t, `{"hash": "aa"}`, string(rpcErr.Data))
	require.False(t, IsDecodeError(err))
	require.False(t, IsTransportError(err))
}

func TestDecodeResponse_Invalid(t *testing.T) {
	tests := []struct {
		payload string
		err     string
	}{
		{`not json`, "invalid envelope"},
		{`{"jsonrpc":"2.0","id":4,"result":1}`, "does not match request id 3"},
		{`{"jsonrpc":"2.0","result":1}`, "does not match request id 3"},
		{`{"jsonrpc":"2.0","id":3}`, "neither result nor error"},
	}

	for _, test := range tests {
		_, err := DecodeResponse("peerCount", 3, []byte(test.payload))
		require.True(t, IsDecodeError(err), test.payload)
		require.Contains(t, err.Error(), test.err)
		require.Contains(t, err.Error(), "peerCount")
	}
}

func TestDecodeResult(t *testing.T) {
	var n int
	require.NoError(t, DecodeResult("peerCount", []byte(`12`), &n))
	require.Equal(t, 12, n)

	err := DecodeResult("peerCount", []byte(`"twelve"`), &n)
	require.True(t, IsDecodeError(err))
	require.NoError(t, DecodeResult("submitBlock", []byte(`null`), nil))
}
