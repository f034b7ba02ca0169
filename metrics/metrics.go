// Package metrics instruments the transport seam with Prometheus metrics.
package metrics

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/IvanTurko/mws-sdk-go/transport"
)

const namespace = "mws"

// Collectors groups the metrics recorded by InstrumentedClient.
type Collectors struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ErrorsTotal     *prometheus.CounterVec
}

// NewCollectors registers the collectors on reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of MWS HTTP requests that produced a response.",
		}, []string{"host", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of MWS HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"host", "path"}),

		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "Total number of MWS HTTP requests that failed without a response.",
		}, []string{"host", "path"}),
	}
}

// InstrumentedClient wraps a transport.HTTPClient and records one
// observation per request.
type InstrumentedClient struct {
	next       transport.HTTPClient
	collectors *Collectors
}

// NewInstrumentedClient registers fresh collectors on reg and wraps next.
func NewInstrumentedClient(next transport.HTTPClient, reg prometheus.Registerer) *InstrumentedClient {
	return &InstrumentedClient{next: next, collectors: NewCollectors(reg)}
}

// Collectors exposes the underlying metrics.
func (c *InstrumentedClient) Collectors() *Collectors {
	return c.collectors
}

func (c *InstrumentedClient) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	host, path := target(req.FullURL)
	start := time.Now()

	resp, err := c.next.Do(ctx, req)

	c.collectors.RequestDuration.WithLabelValues(host, path).Observe(time.Since(start).Seconds())
	if err != nil || resp == nil {
		c.collectors.ErrorsTotal.WithLabelValues(host, path).Inc()
		return resp, err
	}
	c.collectors.RequestsTotal.WithLabelValues(host, path, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

func target(fullURL string) (host, path string) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "unknown", "unknown"
	}
	path = u.Path
	if path == "" {
		path = "/"
	}
	return u.Host, path
}
