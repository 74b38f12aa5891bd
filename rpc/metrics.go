package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts calls made through a Caller.
type Metrics struct {
	Requests *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Batches  prometheus.Counter
}

func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nimiq_rpc_requests_total",
			Help: "The total number of RPC requests sent, by method",
		}, []string{"method"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nimiq_rpc_errors_total",
			Help: "The total number of failed RPC calls, by method and error kind",
		}, []string{"method", "kind"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nimiq_rpc_request_duration_seconds",
			Help:    "Round trip time of RPC requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		Batches: factory.NewCounter(prometheus.CounterOpts{
			Name: "nimiq_rpc_batches_total",
			Help: "The total number of batch requests sent",
		}),
	}
}

func (m *Metrics) observe(method string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method).Inc()
	m.Duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		m.Errors.WithLabelValues(method, errorKind(err)).Inc()
	}
}

func errorKind(err error) string {
	switch {
	case IsTransportError(err):
		return "transport"
	case IsDecodeError(err):
		return "decode"
	}
	if _, ok := AsRPCError(err); ok {
		return "rpc"
	}
	return "encode"
}
