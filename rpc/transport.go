package rpc

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"nimiq/version"
)

// Transport delivers one encoded request, or batch of requests, and returns
// the raw response body. Implementations must be safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, payload []byte) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, payload []byte) ([]byte, error)

func (f TransportFunc) Send(ctx context.Context, payload []byte) ([]byte, error) {
	return f(ctx, payload)
}

// HTTPTransport posts requests to a single node endpoint.
type HTTPTransport struct {
	url       string
	username  string
	password  string
	userAgent string
	c         *http.Client
	limiter   *rate.Limiter
}

type HTTPOpt func(t *HTTPTransport)

func WithBasicAuth(username, password string) HTTPOpt {
	return func(t *HTTPTransport) {
		t.username = username
		t.password = password
	}
}

func WithHTTPClient(client *http.Client) HTTPOpt {
	return func(t *HTTPTransport) {
		t.c = client
	}
}

func WithTimeout(timeout time.Duration) HTTPOpt {
	return func(t *HTTPTransport) {
		t.c = &http.Client{Timeout: timeout}
	}
}

// WithRateLimit caps the rate of outgoing requests. A non-positive rps
// disables the limit.
func WithRateLimit(rps float64, burst int) HTTPOpt {
	return func(t *HTTPTransport) {
		if rps <= 0 {
			t.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithUserAgent(ua string) HTTPOpt {
	return func(t *HTTPTransport) {
		t.userAgent = ua
	}
}

func NewHTTPTransport(url string, opts ...HTTPOpt) *HTTPTransport {
	t := &HTTPTransport{
		url:       url,
		userAgent: version.UserAgent,
		c:         http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) Send(ctx context.Context, payload []byte) ([]byte, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "rate limit")
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "error building http request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if t.username != "" || t.password != "" {
		req.SetBasicAuth(t.username, t.password)
	}
	res, err := t.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading response body")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("non-200 status code: %d", res.StatusCode)
	}
	return body, nil
}
