package client

import (
	"context"

	"nimiq/primitives"
	"nimiq/rpc"
)

// SendRawTransaction broadcasts a serialized transaction and returns its
// hash.
func (c *Client) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	var hash string
	if err := c.caller.Call(ctx, rpc.SendRawTransaction, &hash, txHex); err != nil {
		return "", err
	}
	return hash, nil
}

// CreateRawTransaction has the node build and sign tx without sending it.
// The sender must be an account held by the node.
func (c *Client) CreateRawTransaction(ctx context.Context, tx *primitives.OutgoingTransaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	var txHex string
	if err := c.caller.Call(ctx, rpc.CreateRawTransaction, &txHex, tx); err != nil {
		return "", err
	}
	return txHex, nil
}

func (c *Client) SendTransaction(ctx context.Context, tx *primitives.OutgoingTransaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	var hash string
	if err := c.caller.Call(ctx, rpc.SendTransaction, &hash, tx); err != nil {
		return "", err
	}
	c.lgr.Debug("sent transaction", "hash", hash, "value", tx.Value, "fee", tx.Fee)
	return hash, nil
}

func (c *Client) GetRawTransactionInfo(ctx context.Context, txHex string) (*primitives.RawTransactionInfo, error) {
	info := new(primitives.RawTransactionInfo)
	if err := c.caller.Call(ctx, rpc.GetRawTransactionInfo, info, txHex); err != nil {
		return nil, err
	}
	return info, nil
}

// GetTransactionByBlockHashAndIndex returns the transaction or nil.
func (c *Client) GetTransactionByBlockHashAndIndex(ctx context.Context, blockHash string, index int) (*primitives.Transaction, error) {
	return c.nullableTransaction(ctx, rpc.GetTransactionByBlockHashAndIndex, blockHash, index)
}

// GetTransactionByBlockNumberAndIndex returns the transaction or nil.
func (c *Client) GetTransactionByBlockNumberAndIndex(ctx context.Context, height int64, index int) (*primitives.Transaction, error) {
	return c.nullableTransaction(ctx, rpc.GetTransactionByBlockNumberAndIndex, height, index)
}

// GetTransactionByHash returns the transaction or nil. Nodes answer an
// unknown hash with an RPC error rather than null.
func (c *Client) GetTransactionByHash(ctx context.Context, hash string) (*primitives.Transaction, error) {
	return c.nullableTransaction(ctx, rpc.GetTransactionByHash, hash)
}

func (c *Client) nullableTransaction(ctx context.Context, m rpc.Method, args ...interface{}) (*primitives.Transaction, error) {
	tx := new(primitives.Transaction)
	found, err := c.caller.CallNullable(ctx, m, tx, args...)
	if err != nil || !found {
		return nil, err
	}
	return tx, nil
}

// GetTransactionReceipt returns the receipt or nil.
func (c *Client) GetTransactionReceipt(ctx context.Context, hash string) (*primitives.TransactionReceipt, error) {
	receipt := new(primitives.TransactionReceipt)
	found, err := c.caller.CallNullable(ctx, rpc.GetTransactionReceipt, receipt, hash)
	if err != nil || !found {
		return nil, err
	}
	return receipt, nil
}

// GetTransactionsByAddress returns the latest transactions of address. A
// limit of 0 leaves the limit to the node.
func (c *Client) GetTransactionsByAddress(ctx context.Context, address primitives.Address, limit int) ([]*primitives.Transaction, error) {
	var limitArg interface{}
	if limit > 0 {
		limitArg = limit
	}
	var txs []*primitives.Transaction
	if err := c.caller.Call(ctx, rpc.GetTransactionsByAddress, &txs, address.Friendly(), limitArg); err != nil {
		return nil, err
	}
	return txs, nil
}
