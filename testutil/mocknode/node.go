// Package mocknode runs a fake Nimiq node that answers JSON-RPC requests
// with canned results.
package mocknode

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	CodeMethodNotFound = -32601
	CodeInternal       = -32603
)

type Request struct {
	JSONRPC string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      json.RawMessage   `json:"id"`
}

// Error is returned by a Handler to answer with a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Handler func(params []json.RawMessage) (interface{}, *Error)

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Node struct {
	srv *httptest.Server

	// ReverseBatches answers batch requests in reverse order.
	ReverseBatches bool

	mtx      sync.Mutex
	handlers map[string]Handler
	raw      map[string][]byte
	requests []*Request
	username string
	password string
}

// New starts a fake node that is shut down when t completes.
func New(t *testing.T) *Node {
	n := &Node{
		handlers: make(map[string]Handler),
		raw:      make(map[string][]byte),
	}
	n.srv = httptest.NewServer(http.HandlerFunc(n.serveHTTP))
	t.Cleanup(n.srv.Close)
	return n
}

func (n *Node) URL() string {
	return n.srv.URL
}

func (n *Node) Handle(method string, h Handler) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.handlers[method] = h
}

// Result answers method with result. A nil result is sent as null; a
// json.RawMessage or string of raw JSON can be passed via RawResult.
func (n *Node) Result(method string, result interface{}) {
	n.Handle(method, func([]json.RawMessage) (interface{}, *Error) {
		return result, nil
	})
}

// RawResult answers method with the given JSON text as its result.
func (n *Node) RawResult(method string, result string) {
	n.Result(method, json.RawMessage(result))
}

func (n *Node) Error(method string, code int, message string) {
	n.Handle(method, func([]json.RawMessage) (interface{}, *Error) {
		return nil, &Error{Code: code, Message: message}
	})
}

// RawBody answers single requests for method with body verbatim.
func (n *Node) RawBody(method string, body string) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.raw[method] = []byte(body)
}

// RequireAuth makes the node reject requests without these Basic auth
// credentials.
func (n *Node) RequireAuth(username, password string) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.username = username
	n.password = password
}

func (n *Node) Requests() []*Request {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	out := make([]*Request, len(n.requests))
	copy(out, n.requests)
	return out
}

func (n *Node) LastRequest() *Request {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	if len(n.requests) == 0 {
		return nil
	}
	return n.requests[len(n.requests)-1]
}

func (n *Node) serveHTTP(w http.ResponseWriter, r *http.Request) {
	n.mtx.Lock()
	username, password := n.username, n.password
	n.mtx.Unlock()
	if username != "" || password != "" {
		u, p, ok := r.BasicAuth()
		if !ok || u != username || p != password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	body = bytes.TrimSpace(body)
	w.Header().Set("Content-Type", "application/json")

	if len(body) > 0 && body[0] == '[' {
		var reqs []*Request
		if err := json.Unmarshal(body, &reqs); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resps := make([]*response, len(reqs))
		for i, req := range reqs {
			resps[i] = n.answer(req)
		}
		if n.ReverseBatches {
			for i, j := 0, len(resps)-1; i < j; i, j = i+1, j-1 {
				resps[i], resps[j] = resps[j], resps[i]
			}
		}
		_ = json.NewEncoder(w).Encode(resps)
		return
	}

	req := new(Request)
	if err := json.Unmarshal(body, req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	n.mtx.Lock()
	raw, hasRaw := n.raw[req.Method]
	n.mtx.Unlock()
	if hasRaw {
		n.record(req)
		_, _ = w.Write(raw)
		return
	}
	_ = json.NewEncoder(w).Encode(n.answer(req))
}

func (n *Node) record(req *Request) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.requests = append(n.requests, req)
}

func (n *Node) answer(req *Request) *response {
	n.record(req)
	n.mtx.Lock()
	h, ok := n.handlers[req.Method]
	n.mtx.Unlock()

	resp := &response{JSONRPC: "2.0", ID: req.ID}
	if !ok {
		resp.Error = &Error{Code: CodeMethodNotFound, Message: "Method not found"}
		return resp
	}
	result, rpcErr := h(req.Params)
	if rpcErr != nil {
		resp.Error = rpcErr
		return resp
	}
	b, err := json.Marshal(result)
	if err != nil {
		resp.Error = &Error{Code: CodeInternal, Message: err.Error()}
		return resp
	}
	resp.Result = b
	return resp
}
