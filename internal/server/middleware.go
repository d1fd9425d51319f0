package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader    = "X-Request-ID"
	forwardedForHeader = "X-Forwarded-For"
	maxRequestIDLength = 64

	// Idle clients are forgotten after clientIdleTTL; the scan for idle
	// clients runs at most once per clientScanInterval.
	clientIdleTTL      = 5 * time.Minute
	clientScanInterval = 30 * time.Second
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// ApplyMiddlewares wraps h so that the first middleware runs first.
func ApplyMiddlewares(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RequestIDMiddleware tags every request with an ID, kept from a
// well-formed X-Request-ID header or generated, and echoes it back.
func RequestIDMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sanitizeRequestID(r.Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// sanitizeRequestID returns id trimmed, or "" unless it is short and made
// of letters, digits, '-', '_' and '.' only. IDs end up in logs verbatim.
func sanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}
	valid := strings.IndexFunc(id, func(c rune) bool {
		return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '-' || c == '_' || c == '.')
	}) == -1
	if !valid {
		return ""
	}
	return id
}

// responseRecorder captures the status and size of a response.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (rr *responseRecorder) WriteHeader(code int) {
	if !rr.wroteHeader {
		rr.status = code
		rr.wroteHeader = true
	}
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.wroteHeader = true
	n, err := rr.ResponseWriter.Write(b)
	rr.bytes += n
	return n, err
}

// LoggingMiddleware logs one line per request at a level picked from the
// status: Info below 400, Warn for client errors, Error for server errors.
// A panicking handler is logged and, if it wrote nothing, answered with 500.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.ErrorContext(ctx, "panic recovered",
					appendRequestID(ctx, []any{"method", r.Method, "path", r.URL.Path, "panic", v})...)
				if !rec.wroteHeader {
					http.Error(rec, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rec.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "request completed", appendRequestID(ctx, []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			})...)
		})
	}
}

// RateLimitConfig configures per-client token buckets.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int

	// TrustProxy keys clients on the X-Forwarded-For entry appended by a
	// reverse proxy instead of the peer address. Leave it off unless every
	// request arrives through such a proxy: the header is client-controlled.
	TrustProxy bool
}

// Enabled reports whether rate limiting should be enforced.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0 && c.Burst > 0
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets holds one token bucket per client key.
type buckets struct {
	cfg RateLimitConfig

	mu       sync.Mutex
	byClient map[string]*bucket
	lastScan time.Time
}

// allow takes a token from the bucket of key, creating it on first use.
func (b *buckets) allow(key string, now time.Time) bool {
	b.mu.Lock()
	bk, ok := b.byClient[key]
	if !ok {
		bk = &bucket{limiter: rate.NewLimiter(rate.Limit(b.cfg.RequestsPerSecond), b.cfg.Burst)}
		b.byClient[key] = bk
	}
	bk.lastSeen = now
	if now.Sub(b.lastScan) > clientScanInterval {
		for k, other := range b.byClient {
			if now.Sub(other.lastSeen) > clientIdleTTL {
				delete(b.byClient, k)
			}
		}
		b.lastScan = now
	}
	b.mu.Unlock()

	return bk.limiter.AllowN(now, 1)
}

// RateLimitMiddleware answers 429 with Retry-After once a client exhausts
// its bucket. It is a no-op when cfg is not enabled.
func RateLimitMiddleware(cfg RateLimitConfig, logger *slog.Logger) Middleware {
	if !cfg.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}
	if logger == nil {
		logger = slog.Default()
	}
	b := &buckets{cfg: cfg, byClient: make(map[string]*bucket)}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if b.allow(clientKey(r, cfg.TrustProxy), time.Now()) {
				next.ServeHTTP(w, r)
				return
			}
			logger.WarnContext(r.Context(), "rate limit exceeded",
				appendRequestID(r.Context(), []any{"method", r.Method, "path", r.URL.Path})...)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		})
	}
}

// clientKey identifies the client for rate limiting: the host of the peer
// address, or with trustProxy the last X-Forwarded-For entry, which is the
// one the proxy appended.
func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Values(forwardedForHeader); len(xff) > 0 {
			last := xff[len(xff)-1]
			if i := strings.LastIndexByte(last, ','); i >= 0 {
				last = last[i+1:]
			}
			if ip := strings.TrimSpace(last); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}
