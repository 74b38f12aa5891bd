package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"nimiq/log"
	"nimiq/testutil"
	"nimiq/testutil/mocknode"
	"nimiq/version"
)

func TestHTTPTransport_BasicAuth(t *testing.T) {
	node := mocknode.New(t)
	node.RequireAuth("rpcuser", "secret")
	node.Result("peerCount", 3)

	var n int
	unauthenticated := NewCaller(NewHTTPTransport(node.URL()), WithLogger(log.Discard()))
	err := unauthenticated.Call(context.Background(), PeerCount, &n)
	require.True(t, IsTransportError(err))
	require.Contains(t, err.Error(), "non-200 status code: 401")

	authenticated := NewCaller(
		NewHTTPTransport(node.URL(), WithBasicAuth("rpcuser", "secret")),
		WithLogger(log.Discard()),
	)
	require.NoError(t, authenticated.Call(context.Background(), PeerCount, &n))
	require.Equal(t, 3, n)
}

func TestHTTPTransport_Headers(t *testing.T) {
	var ua, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		contentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewHTTPTransport(srv.URL).Send(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, version.UserAgent, ua)
	require.Equal(t, "application/json", contentType)

	_, err = NewHTTPTransport(srv.URL, WithUserAgent("custom/1.0")).Send(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, "custom/1.0", ua)
}

func TestHTTPTransport_ConnectionRefused(t *testing.T) {
	caller := NewCaller(NewHTTPTransport(testutil.ClosedURL(t), WithTimeout(time.Second)), WithLogger(log.Discard()))
	err := caller.Call(context.Background(), PeerCount, nil)
	require.True(t, IsTransportError(err))
}

func TestHTTPTransport_RateLimit(t *testing.T) {
	node := mocknode.New(t)
	node.Result("peerCount", 1)
	tr := NewHTTPTransport(node.URL(), WithRateLimit(1, 1))
	caller := NewCaller(tr, WithLogger(log.Discard()))

	require.NoError(t, caller.Call(context.Background(), PeerCount, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := caller.Call(ctx, PeerCount, nil)
	require.True(t, IsTransportError(err))
	require.Len(t, node.Requests(), 1)
}
