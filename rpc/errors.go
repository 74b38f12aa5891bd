package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidParams = errors.New("invalid params")
	// ErrUnexpectedNull is wrapped in a *DecodeError when a method that
	// always yields a value answers null.
	ErrUnexpectedNull = errors.New("unexpected null result")
)

// Error is a JSON-RPC error object returned by the node. It is surfaced
// unchanged; the meaning of Code depends on the method.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// TransportError reports that the request never produced a response, for
// example because the connection failed or the context was cancelled. It is
// safe for the caller to retry.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Method, e.Err)
}

func (e *TransportError) Cause() error {
	return e.Err
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Temporary() bool {
	return true
}

// DecodeError reports a response that does not have the shape expected for
// the method. It usually means the node speaks a different API version.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding %s response: %v", e.Method, e.Err)
}

func (e *DecodeError) Cause() error {
	return e.Err
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// AsRPCError returns the node's error object if err carries one.
func AsRPCError(err error) (*Error, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
