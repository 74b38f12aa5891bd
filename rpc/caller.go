package rpc

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"nimiq/log"
)

// Caller performs JSON-RPC calls over a Transport. It holds no mutable
// state besides the request id counter and is safe for concurrent use.
type Caller struct {
	transport Transport
	metrics   *Metrics
	lgr       log.Logger
	lastID    uint64
}

type CallerOpt func(c *Caller)

func WithMetrics(m *Metrics) CallerOpt {
	return func(c *Caller) {
		c.metrics = m
	}
}

func WithLogger(lgr log.Logger) CallerOpt {
	return func(c *Caller) {
		c.lgr = lgr
	}
}

func NewCaller(transport Transport, opts ...CallerOpt) *Caller {
	c := &Caller{
		transport: transport,
		lgr:       log.WithModule("rpc"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Caller) nextID() uint64 {
	return atomic.AddUint64(&c.lastID, 1)
}

// CallRaw sends a single request and returns the raw result, which may be
// the JSON null. The result is not decoded.
func (c *Caller) CallRaw(ctx context.Context, m Method, args ...interface{}) (json.RawMessage, error) {
	start := time.Now()
	res, err := c.callRaw(ctx, m, args...)
	c.metrics.observe(m.Name, start, err)
	if err != nil {
		c.lgr.Debug("rpc call failed", "method", m.Name, "err", err)
		return nil, err
	}
	c.lgr.Trace("rpc call succeeded", "method", m.Name, "duration", time.Since(start))
	return res, nil
}

func (c *Caller) callRaw(ctx context.Context, m Method, args ...interface{}) (json.RawMessage, error) {
	req, err := NewRequest(c.nextID(), m, args...)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidParams, "error encoding %s: %v", m.Name, err)
	}
	body, err := c.transport.Send(ctx, payload)
	if err != nil {
		return nil, &TransportError{Method: m.Name, Err: err}
	}
	return DecodeResponse(m.Name, req.ID, body)
}

// Call decodes the result of m into out. A null result is a *DecodeError
// wrapping ErrUnexpectedNull; use CallNullable where null means "not
// found".
func (c *Caller) Call(ctx context.Context, m Method, out interface{}, args ...interface{}) error {
	_, err := c.call(ctx, m, out, false, args...)
	return err
}

// CallNullable is like Call but reports a null result as found == false.
func (c *Caller) CallNullable(ctx context.Context, m Method, out interface{}, args ...interface{}) (bool, error) {
	return c.call(ctx, m, out, true, args...)
}

func (c *Caller) call(ctx context.Context, m Method, out interface{}, nullable bool, args ...interface{}) (bool, error) {
	start := time.Now()
	raw, err := c.callRaw(ctx, m, args...)
	found := false
	if err == nil {
		switch {
		case !IsNull(raw):
			found = true
			err = DecodeResult(m.Name, raw, out)
		case !nullable:
			err = &DecodeError{Method: m.Name, Err: ErrUnexpectedNull}
		}
	}
	c.metrics.observe(m.Name, start, err)
	if err != nil {
		c.lgr.Debug("rpc call failed", "method", m.Name, "err", err)
		return false, err
	}
	c.lgr.Trace("rpc call succeeded", "method", m.Name, "duration", time.Since(start))
	return found, nil
}

// BatchCall is one element of a batch. Result, Found and Err are set by
// CallBatch.
type BatchCall struct {
	Method Method
	Args   []interface{}
	Result interface{}
	Found  bool
	Err    error

	id uint64
}

// CallBatch sends every call in one JSON array and matches the responses
// to the calls by id. The returned error covers the batch as a whole;
// per-call failures are stored in each call's Err.
func (c *Caller) CallBatch(ctx context.Context, calls []*BatchCall) error {
	if len(calls) == 0 {
		return nil
	}
	start := time.Now()
	reqs := make([]*Request, 0, len(calls))
	for _, call := range calls {
		req, err := NewRequest(c.nextID(), call.Method, call.Args...)
		if err != nil {
			return err
		}
		call.id = req.ID
		reqs = append(reqs, req)
	}
	payload, err := json.Marshal(reqs)
	if err != nil {
		return errors.Wrapf(ErrInvalidParams, "error encoding batch: %v", err)
	}
	if c.metrics != nil {
		c.metrics.Batches.Inc()
	}

	body, err := c.transport.Send(ctx, payload)
	if err != nil {
		err = &TransportError{Method: "batch", Err: err}
		for _, call := range calls {
			call.Err = err
			c.metrics.observe(call.Method.Name, start, err)
		}
		return err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		// a node that rejects the whole batch answers with a single error object
		single := new(Response)
		if json.Unmarshal(body, single) == nil && single.Error != nil {
			return single.Error
		}
		return &DecodeError{Method: "batch", Err: errors.Wrap(err, "invalid batch envelope")}
	}

	byID := make(map[uint64]*Response, len(items))
	for _, item := range items {
		resp := new(Response)
		if err := json.Unmarshal(item, resp); err != nil {
			return &DecodeError{Method: "batch", Err: errors.Wrap(err, "invalid envelope in batch")}
		}
		if resp.ID != nil {
			byID[*resp.ID] = resp
		}
	}

	for _, call := range calls {
		call.Err = nil
		call.Found = false
		resp, ok := byID[call.id]
		if !ok {
			call.Err = &DecodeError{Method: call.Method.Name, Err: errors.Errorf("no response for request id %d", call.id)}
		} else if raw, err := checkResponse(call.Method.Name, call.id, resp); err != nil {
			call.Err = err
		} else if !IsNull(raw) {
			call.Found = true
			call.Err = DecodeResult(call.Method.Name, raw, call.Result)
		}
		c.metrics.observe(call.Method.Name, start, call.Err)
	}
	c.lgr.Trace("rpc batch completed", "calls", len(calls), "duration", time.Since(start))
	return nil
}
