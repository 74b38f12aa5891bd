package rpc

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// DecodeResponse validates a response envelope for the request with the
// given id. It returns either the raw result or the node's *Error, never
// both.
func DecodeResponse(method string, id uint64, payload []byte) (json.RawMessage, error) {
	resp := new(Response)
	if err := json.Unmarshal(payload, resp); err != nil {
		return nil, &DecodeError{Method: method, Err: errors.Wrap(err, "invalid envelope")}
	}
	return checkResponse(method, id, resp)
}

func checkResponse(method string, id uint64, resp *Response) (json.RawMessage, error) {
	if resp.Error != nil {
		return nil, resp.Error
	}
	if resp.ID == nil || *resp.ID != id {
		return nil, &DecodeError{Method: method, Err: errors.Errorf("response id does not match request id %d", id)}
	}
	if len(resp.Result) == 0 {
		return nil, &DecodeError{Method: method, Err: errors.New("response has neither result nor error")}
	}
	return resp.Result, nil
}

// IsNull reports whether a result is the JSON null the node uses for "not
// found".
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DecodeResult unmarshals a raw result into out, reporting shape mismatches
// as a *DecodeError.
func DecodeResult(method string, raw json.RawMessage, out interface{}) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Method: method, Err: err}
	}
	return nil
}
