package metrics

import (
	"net/http"
	"strconv"
	"time"
)

const unmatchedRoute = "unmatched"

// Middleware records request count and duration for the given handler. The
// route label is read after the handler runs, once a ServeMux below has set
// r.Pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		duration := time.Since(start).Seconds()
		route := RouteLabel(r)
		status := strconv.Itoa(rec.status)
		RequestTotal.WithLabelValues(r.Method, route, status).Inc()
		RequestDuration.WithLabelValues(r.Method, route).Observe(duration)
	})
}

// RouteLabel is the matched mux pattern, e.g. /questions/{question_id}.
// Requests that matched no route, or only the catch-all, share one label so
// arbitrary paths cannot grow the series count.
func RouteLabel(r *http.Request) string {
	switch r.Pattern {
	case "", "/":
		return unmatchedRoute
	default:
		return r.Pattern
	}
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
