// Package client exposes the node's JSON-RPC API as typed Go methods.
//
// Operations documented as returning "or nil" report a missing entity as a
// nil result with a nil error. Some node methods raise an RPC error for a
// missing entity instead; those errors are returned unchanged as *rpc.Error.
package client

import (
	"context"

	"nimiq/log"
	"nimiq/primitives"
	"nimiq/rpc"
)

type Client struct {
	caller *rpc.Caller
	lgr    log.Logger
}

func New(caller *rpc.Caller) *Client {
	return &Client{
		caller: caller,
		lgr:    log.WithModule("client"),
	}
}

// NewHTTP returns a client that talks to the node at url.
func NewHTTP(url string, opts ...rpc.HTTPOpt) *Client {
	return New(rpc.NewCaller(rpc.NewHTTPTransport(url, opts...)))
}

func (c *Client) Caller() *rpc.Caller {
	return c.caller
}

func (c *Client) PeerCount(ctx context.Context) (int, error) {
	var n int
	if err := c.caller.Call(ctx, rpc.PeerCount, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *Client) Syncing(ctx context.Context) (*primitives.SyncingStatus, error) {
	status := new(primitives.SyncingStatus)
	if err := c.caller.Call(ctx, rpc.Syncing, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) Consensus(ctx context.Context) (primitives.ConsensusState, error) {
	var state primitives.ConsensusState
	if err := c.caller.Call(ctx, rpc.Consensus, &state); err != nil {
		return "", err
	}
	return state, nil
}

func (c *Client) PeerList(ctx context.Context) ([]*primitives.PeerInfo, error) {
	var peers []*primitives.PeerInfo
	if err := c.caller.Call(ctx, rpc.PeerList, &peers); err != nil {
		return nil, err
	}
	return peers, nil
}

// PeerState returns the peer at address, or nil if the node does not know
// it.
func (c *Client) PeerState(ctx context.Context, address string) (*primitives.PeerInfo, error) {
	return c.peerState(ctx, address, nil)
}

func (c *Client) SetPeerState(ctx context.Context, address string, cmd primitives.PeerStateCommand) (*primitives.PeerInfo, error) {
	return c.peerState(ctx, address, string(cmd))
}

func (c *Client) peerState(ctx context.Context, address string, cmd interface{}) (*primitives.PeerInfo, error) {
	peer := new(primitives.PeerInfo)
	found, err := c.caller.CallNullable(ctx, rpc.PeerState, peer, address, cmd)
	if err != nil || !found {
		return nil, err
	}
	return peer, nil
}
