package rpc

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

const Version = "2.0"

type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

type explicitNull struct{}

func (explicitNull) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Null sends a JSON null in a parameter position. A nil argument means the
// parameter is not provided at all.
var Null json.Marshaler = explicitNull{}

// NewRequest encodes a call to m. args must have one entry per parameter
// of m, with nil marking an optional parameter the caller leaves unset.
// Unset trailing optionals are omitted from the params array.
func NewRequest(id uint64, m Method, args ...interface{}) (*Request, error) {
	if len(args) != m.Params {
		return nil, errors.Wrapf(ErrInvalidParams, "%s takes %d params, got %d", m.Name, m.Params, len(args))
	}
	required := m.Params - m.Optional
	for i := 0; i < required; i++ {
		if isUnset(args[i]) {
			return nil, errors.Wrapf(ErrInvalidParams, "param %d of %s is required", i, m.Name)
		}
	}

	n := required
	for i := required; i < len(args); i++ {
		if isUnset(args[i]) {
			continue
		}
		if n != i {
			return nil, errors.Wrapf(ErrInvalidParams, "param %d of %s is set but param %d is not", i, m.Name, n)
		}
		n = i + 1
	}

	params := make([]interface{}, n)
	copy(params, args[:n])
	return &Request{
		JSONRPC: Version,
		Method:  m.Name,
		Params:  params,
		ID:      id,
	}, nil
}

func isUnset(arg interface{}) bool {
	if arg == nil {
		return true
	}
	v := reflect.ValueOf(arg)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
