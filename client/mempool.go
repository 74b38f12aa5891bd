package client

import (
	"context"

	"nimiq/primitives"
	"nimiq/rpc"
)

// MempoolContent lists the transactions in the mempool, as hashes unless
// includeTransactions is set.
func (c *Client) MempoolContent(ctx context.Context, includeTransactions bool) ([]primitives.TransactionRef, error) {
	var refs []primitives.TransactionRef
	if err := c.caller.Call(ctx, rpc.MempoolContent, &refs, optionalFlag(includeTransactions)); err != nil {
		return nil, err
	}
	return refs, nil
}

func (c *Client) Mempool(ctx context.Context) (*primitives.Mempool, error) {
	mempool := new(primitives.Mempool)
	if err := c.caller.Call(ctx, rpc.Mempool, mempool); err != nil {
		return nil, err
	}
	return mempool, nil
}

func (c *Client) MinFeePerByte(ctx context.Context) (int64, error) {
	return c.callInt64(ctx, rpc.MinFeePerByte, nil)
}

// SetMinFeePerByte sets the node's minimum fee per byte and returns the
// new value.
func (c *Client) SetMinFeePerByte(ctx context.Context, fee int64) (int64, error) {
	return c.callInt64(ctx, rpc.MinFeePerByte, fee)
}

func (c *Client) callInt64(ctx context.Context, m rpc.Method, args ...interface{}) (int64, error) {
	var n int64
	if err := c.caller.Call(ctx, m, &n, args...); err != nil {
		return 0, err
	}
	return n, nil
}

// optionalFlag leaves a boolean parameter unset when it is false, which is
// the node's default.
func optionalFlag(b bool) interface{} {
	if b {
		return true
	}
	return nil
}
