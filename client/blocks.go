package client

import (
	"context"

	"nimiq/primitives"
	"nimiq/rpc"
)

func (c *Client) BlockNumber(ctx context.Context) (int64, error) {
	return c.callInt64(ctx, rpc.BlockNumber)
}

// GetBlockTransactionCountByHash returns the number of transactions in a
// block. found is false for an unknown block.
func (c *Client) GetBlockTransactionCountByHash(ctx context.Context, hash string) (int, bool, error) {
	return c.nullableCount(ctx, rpc.GetBlockTransactionCountByHash, hash)
}

// GetBlockTransactionCountByNumber is like GetBlockTransactionCountByHash,
// but nodes answer an invalid height with an RPC error.
func (c *Client) GetBlockTransactionCountByNumber(ctx context.Context, height int64) (int, bool, error) {
	return c.nullableCount(ctx, rpc.GetBlockTransactionCountByNumber, height)
}

func (c *Client) nullableCount(ctx context.Context, m rpc.Method, arg interface{}) (int, bool, error) {
	var n int
	found, err := c.caller.CallNullable(ctx, m, &n, arg)
	if err != nil {
		return 0, false, err
	}
	return n, found, nil
}

// GetBlockByHash returns the block or nil. Transactions are returned as
// full objects if includeTransactions is set and as hashes otherwise.
func (c *Client) GetBlockByHash(ctx context.Context, hash string, includeTransactions bool) (*primitives.Block, error) {
	return c.nullableBlock(ctx, rpc.GetBlockByHash, hash, includeTransactions)
}

// GetBlockByNumber returns the block at height. Nodes answer an invalid
// height with an RPC error.
func (c *Client) GetBlockByNumber(ctx context.Context, height int64, includeTransactions bool) (*primitives.Block, error) {
	return c.nullableBlock(ctx, rpc.GetBlockByNumber, height, includeTransactions)
}

func (c *Client) nullableBlock(ctx context.Context, m rpc.Method, id interface{}, includeTransactions bool) (*primitives.Block, error) {
	block := new(primitives.Block)
	found, err := c.caller.CallNullable(ctx, m, block, id, optionalFlag(includeTransactions))
	if err != nil || !found {
		return nil, err
	}
	return block, nil
}
