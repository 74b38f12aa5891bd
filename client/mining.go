package client

import (
	"context"

	"nimiq/primitives"
	"nimiq/rpc"
)

func (c *Client) Mining(ctx context.Context) (bool, error) {
	return c.callBool(ctx, rpc.Mining, nil)
}

func (c *Client) SetMining(ctx context.Context, enabled bool) (bool, error) {
	return c.callBool(ctx, rpc.Mining, enabled)
}

func (c *Client) callBool(ctx context.Context, m rpc.Method, args ...interface{}) (bool, error) {
	var b bool
	if err := c.caller.Call(ctx, m, &b, args...); err != nil {
		return false, err
	}
	return b, nil
}

// Hashrate returns the node's hashrate in hashes per second.
func (c *Client) Hashrate(ctx context.Context) (float64, error) {
	var rate float64
	if err := c.caller.Call(ctx, rpc.Hashrate, &rate); err != nil {
		return 0, err
	}
	return rate, nil
}

func (c *Client) MinerThreads(ctx context.Context) (int, error) {
	n, err := c.callInt64(ctx, rpc.MinerThreads, nil)
	return int(n), err
}

func (c *Client) SetMinerThreads(ctx context.Context, threads int) (int, error) {
	n, err := c.callInt64(ctx, rpc.MinerThreads, threads)
	return int(n), err
}

// MinerAddress returns the address that receives the node's mining rewards.
func (c *Client) MinerAddress(ctx context.Context) (primitives.Address, error) {
	var addr primitives.Address
	if err := c.caller.Call(ctx, rpc.MinerAddress, &addr); err != nil {
		return primitives.ZeroAddress, err
	}
	return addr, nil
}

// Pool returns the host:port of the mining pool the node uses. found is
// false when the node is not using a pool.
func (c *Client) Pool(ctx context.Context) (string, bool, error) {
	return c.pool(ctx, nil)
}

// SetPool connects the node to the pool at address.
func (c *Client) SetPool(ctx context.Context, address string) (string, bool, error) {
	return c.pool(ctx, address)
}

// LeavePool disconnects the node from its mining pool.
func (c *Client) LeavePool(ctx context.Context) (string, bool, error) {
	return c.pool(ctx, false)
}

func (c *Client) pool(ctx context.Context, arg interface{}) (string, bool, error) {
	raw, err := c.caller.CallRaw(ctx, rpc.Pool, arg)
	if err != nil {
		return "", false, err
	}
	if rpc.IsNull(raw) || string(raw) == "false" {
		return "", false, nil
	}
	var pool string
	if err := rpc.DecodeResult(rpc.Pool.Name, raw, &pool); err != nil {
		return "", false, err
	}
	return pool, true, nil
}

func (c *Client) PoolConnectionState(ctx context.Context) (primitives.PoolConnectionState, error) {
	var state primitives.PoolConnectionState
	if err := c.caller.Call(ctx, rpc.PoolConnectionState, &state); err != nil {
		return 0, err
	}
	return state, nil
}

func (c *Client) PoolConfirmedBalance(ctx context.Context) (int64, error) {
	return c.callInt64(ctx, rpc.PoolConfirmedBalance)
}

// GetWork returns a mining job. A nil address uses the node's miner
// address; an empty extraData uses the node's default.
func (c *Client) GetWork(ctx context.Context, address *primitives.Address, extraData string) (*primitives.Work, error) {
	work := new(primitives.Work)
	if err := c.caller.Call(ctx, rpc.GetWork, work, miningArgs(address, extraData)...); err != nil {
		return nil, err
	}
	return work, nil
}

func (c *Client) GetBlockTemplate(ctx context.Context, address *primitives.Address, extraData string) (*primitives.BlockTemplate, error) {
	tmpl := new(primitives.BlockTemplate)
	if err := c.caller.Call(ctx, rpc.GetBlockTemplate, tmpl, miningArgs(address, extraData)...); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func miningArgs(address *primitives.Address, extraData string) []interface{} {
	args := []interface{}{nil, nil}
	if address != nil {
		args[0] = address.Friendly()
	}
	if extraData != "" {
		if address == nil {
			args[0] = rpc.Null
		}
		args[1] = extraData
	}
	return args
}

// SubmitBlock hands a mined block to the node. The node answers with an
// empty result, so null is accepted.
func (c *Client) SubmitBlock(ctx context.Context, blockHex string) error {
	_, err := c.caller.CallRaw(ctx, rpc.SubmitBlock, blockHex)
	return err
}
