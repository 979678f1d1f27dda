package httpapi

import (
	"bytes"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"trivia-app/internal/logger"
)

const (
	requestIDHeader    = "X-Request-ID"
	defaultMaxLogBytes = 512
)

// statusRecorder keeps the status code, the byte count, and the first
// maxLogBytes of the body so failed responses can be logged.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	maxLogBytes  int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	remaining := r.maxLogBytes - r.logBody.Len()
	switch {
	case remaining >= len(p):
		r.logBody.Write(p)
	case remaining > 0:
		r.logBody.Write(p[:remaining])
		r.truncated = true
	case len(p) > 0:
		r.truncated = true
	}

	written, err := r.ResponseWriter.Write(p)
	r.bytesWritten += written
	return written, err
}

// requestLogger tags each request with an id (taken from X-Request-ID when
// present) and logs one line per request.
func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		r = r.WithContext(logger.ContextWithRequestID(r.Context(), requestID))

		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    defaultMaxLogBytes,
		}
		next.ServeHTTP(recorder, r)

		attrs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.statusCode,
			"bytes", recorder.bytesWritten,
			"duration", time.Since(start),
		}
		if recorder.statusCode >= http.StatusBadRequest {
			attrs = append(attrs,
				"response", strings.TrimSpace(recorder.logBody.String()),
				"response_truncated", recorder.truncated,
			)
			log.Warn("request completed with error", attrs...)
			return
		}
		log.Info("request completed", attrs...)
	})
}

// corsMiddleware sets the headers the browser client needs and answers
// preflight requests directly.
func corsMiddleware(allowedOrigin string, next http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,PATCH,POST,DELETE,OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// rateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than ttl are dropped by a sweep that runs at most once per ttl.
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const limiterTTL = 15 * time.Minute

func newRateLimiter(requestsPerMinute, burst int) *rateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &rateLimiter{
		clients:   make(map[string]*clientLimiter),
		rate:      rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:     burst,
		ttl:       limiterTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (rl *rateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.ttl {
		for key, client := range rl.clients {
			if now.Sub(client.lastSeen) > rl.ttl {
				delete(rl.clients, key)
			}
		}
		rl.lastSweep = now
	}

	client, ok := rl.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = now
	return client.limiter
}

func rateLimitMiddleware(requestsPerMinute, burst int, next http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return next
	}
	limiter := newRateLimiter(requestsPerMinute, burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.getLimiter(clientIP(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, messageTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
