package client

import (
	"context"

	"nimiq/primitives"
	"nimiq/rpc"
)

// Accounts lists the accounts held by the node.
func (c *Client) Accounts(ctx context.Context) ([]primitives.Account, error) {
	var accounts primitives.AccountList
	if err := c.caller.Call(ctx, rpc.Accounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount has the node generate a new key pair. The returned wallet
// is the only place the private key is ever reported.
func (c *Client) CreateAccount(ctx context.Context) (*primitives.Wallet, error) {
	wallet := new(primitives.Wallet)
	if err := c.caller.Call(ctx, rpc.CreateAccount, wallet); err != nil {
		return nil, err
	}
	if err := wallet.VerifyAddress(); err != nil {
		return nil, &rpc.DecodeError{Method: rpc.CreateAccount.Name, Err: err}
	}
	return wallet, nil
}

func (c *Client) GetBalance(ctx context.Context, address primitives.Address) (int64, error) {
	return c.callInt64(ctx, rpc.GetBalance, address.Friendly())
}

func (c *Client) GetAccount(ctx context.Context, address primitives.Address) (primitives.Account, error) {
	raw, err := c.caller.CallRaw(ctx, rpc.GetAccount, address.Friendly())
	if err != nil {
		return nil, err
	}
	acct, err := primitives.DecodeAccount(raw)
	if err != nil {
		return nil, &rpc.DecodeError{Method: rpc.GetAccount.Name, Err: err}
	}
	return acct, nil
}
