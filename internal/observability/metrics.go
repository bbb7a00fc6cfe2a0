package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/Thoronador/hex2sv/internal/literal"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK     = "ok"
	ResultEmpty  = "empty"
	ResultFormat = "format"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hex2sv",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hex2sv",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	encodeResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hex2sv",
			Name:      "encode_total",
			Help:      "Encode calls by result.",
		},
		[]string{"result"},
	)
	encodedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hex2sv",
			Name:      "encode_bytes_total",
			Help:      "Bytes encoded per record zone.",
		},
		[]string{"zone"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, encodeResults, encodedBytes)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordEncode counts one encode call. n is the number of decoded bytes and
// is ignored unless result is ResultOK.
func RecordEncode(result string, n int) {
	RegisterMetrics()
	encodeResults.WithLabelValues(result).Inc()
	if result != ResultOK {
		return
	}
	tag, header, body := literal.ZoneCounts(n)
	encodedBytes.WithLabelValues(literal.ZoneTag.String()).Add(float64(tag))
	encodedBytes.WithLabelValues(literal.ZoneHeader.String()).Add(float64(header))
	encodedBytes.WithLabelValues(literal.ZoneBody.String()).Add(float64(body))
}
