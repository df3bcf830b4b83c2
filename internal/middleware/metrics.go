package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mpancino/myAssetPlace-sub004/internal/metrics"
)

// Metrics instruments a handler with request count and latency collectors.
// route should be the registered pattern, not the raw path, to keep label
// cardinality bounded.
func Metrics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
