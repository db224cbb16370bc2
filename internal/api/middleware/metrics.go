package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/metrics"
)

// Metrics returns middleware that records request counts and durations in
// the Prometheus registry.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			m.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rw.statusCode)).Inc()
			m.RequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
