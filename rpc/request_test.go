package rpc

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	var unsetInt *int
	limit := 10

	tests := []struct {
		name   string
		method Method
		args   []interface{}
		json   string
	}{
		{
			"no params",
			BlockNumber,
			nil,
			`{"jsonrpc":"2.0","method":"blockNumber","params":[],"id":7}`,
		},
		{
			"trailing optional omitted",
			GetBlockByNumber,
			[]interface{}{1234, nil},
			`{"jsonrpc":"2.0","method":"getBlockByNumber","params":[1234],"id":7}`,
		},
		{
			"typed nil optional omitted",
			GetTransactionsByAddress,
			[]interface{}{"NQ07", unsetInt},
			`{"jsonrpc":"2.0","method":"getTransactionsByAddress","params":["NQ07"],"id":7}`,
		},
		{
			"optional set",
			GetTransactionsByAddress,
			[]interface{}{"NQ07", &limit},
			`{"jsonrpc":"2.0","method":"getTransactionsByAddress","params":["NQ07",10],"id":7}`,
		},
		{
			"explicit null",
			GetWork,
			[]interface{}{Null, "00ff"},
			`{"jsonrpc":"2.0","method":"getWork","params":[null,"00ff"],"id":7}`,
		},
		{
			"false is a value",
			Pool,
			[]interface{}{false},
			`{"jsonrpc":"2.0","method":"pool","params":[false],"id":7}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req, err := NewRequest(7, test.method, test.args...)
			require.NoError(t, err)
			b, err := json.Marshal(req)
			require.NoError(t, err)
			require.JSONEq(t, test.json, string(b))
		})
	}
}

func TestNewRequest_Invalid(t *testing.T) {
	tests := []struct {
		method Method
		args   []interface{}
		err    string
	}{
		{BlockNumber, []interface{}{1}, "takes 0 params, got 1"},
		{GetBlockByNumber, []interface{}{1}, "takes 2 params, got 1"},
		{GetBalance, []interface{}{nil}, "param 0 of getBalance is required"},
		{GetWork, []interface{}{nil, "00ff"}, "param 1 of getWork is set but param 0 is not"},
	}

	for _, test := range tests {
		_, err := NewRequest(1, test.method, test.args...)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidParams))
		require.Contains(t, err.Error(), test.err)
	}
}

func TestMethods(t *testing.T) {
	require.Len(t, Methods, 38)
	for name, m := range Methods {
		require.Equal(t, name, m.Name)
		require.True(t, m.Optional <= m.Params, name)
	}
	require.Equal(t, GetBlockByHash, Methods["getBlockByHash"])
}
