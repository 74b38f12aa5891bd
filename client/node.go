package client

import (
	"context"

	"nimiq/primitives"
	"nimiq/rpc"
)

const resetConstant = "reset"

// Constant returns the value of a node constant such as
// "BaseConsensus.MAX_ATTEMPTS_TO_FETCH".
func (c *Client) Constant(ctx context.Context, name string) (int64, error) {
	return c.callInt64(ctx, rpc.Constant, name, nil)
}

func (c *Client) SetConstant(ctx context.Context, name string, value int64) (int64, error) {
	return c.callInt64(ctx, rpc.Constant, name, value)
}

// ResetConstant restores the default value of a constant.
func (c *Client) ResetConstant(ctx context.Context, name string) (int64, error) {
	return c.callInt64(ctx, rpc.Constant, name, resetConstant)
}

// SetLogLevel sets the node's log level for tag, or for every tag if tag
// is primitives.AllLogTags.
func (c *Client) SetLogLevel(ctx context.Context, tag string, level primitives.NodeLogLevel) (bool, error) {
	return c.callBool(ctx, rpc.Log, tag, string(level))
}
