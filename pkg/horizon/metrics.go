package horizon

import (
	"context"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

const statusTransportError = "transport_error"

// PrometheusMetrics records request counts and latencies per collection.
// Labels use the first path segment of the resource so IDs never become
// label values.
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the client metrics with reg. A nil reg uses
// the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &PrometheusMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of Horizon requests",
		}, []string{"collection", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Horizon request duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"collection", "status"}),
	}
}

// Register adds the interceptors that feed m to chain.
func (m *PrometheusMetrics) Register(chain *InterceptorChain) {
	chain.AddRequestInterceptor(TimingInterceptor())
	chain.AddResponseInterceptor(m.ResponseInterceptor())
}

// ResponseInterceptor observes every completed exchange. Latency is only
// recorded when TimingInterceptor ran first.
func (m *PrometheusMetrics) ResponseInterceptor() ResponseInterceptor {
	return func(ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse) error {
		collection := collectionOf(req.Resource)

		status := statusTransportError
		if resp.Error == nil {
			status = strconv.Itoa(resp.StatusCode)
		}

		m.requests.WithLabelValues(collection, status).Inc()

		if elapsed, ok := Elapsed(req); ok {
			m.duration.WithLabelValues(collection, status).Observe(elapsed.Seconds())
		}

		return nil
	}
}

func collectionOf(resource string) string {
	collection, _, _ := strings.Cut(resource, "/")

	return collection
}
