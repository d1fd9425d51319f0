package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestApplyMiddlewares(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := ApplyMiddlewares(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, ",") != "outer,inner" {
		t.Errorf("expected outer then inner, got %v", order)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestIDMiddleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generates an ID when none is sent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		got := rec.Header().Get(requestIDHeader)
		if len(got) != 36 {
			t.Errorf("expected a UUID, got %q", got)
		}
		if seen != got {
			t.Errorf("expected the context to carry %q, got %q", got, seen)
		}
	})

	t.Run("keeps a well-formed incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "abc-123_x.y")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got != "abc-123_x.y" {
			t.Errorf("expected the incoming ID, got %q", got)
		}
	})

	t.Run("replaces a malformed incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "bad id\nwith newline")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get(requestIDHeader); got == "bad id\nwith newline" || got == "" {
			t.Errorf("expected a generated ID, got %q", got)
		}
	})
}

func TestSanitizeRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  spaced  ", "spaced"},
		{"ok-1", "ok-1"},
		{"semi;colon", ""},
		{"ünicode", ""},
		{strings.Repeat("a", maxRequestIDLength), strings.Repeat("a", maxRequestIDLength)},
		{strings.Repeat("a", maxRequestIDLength+1), ""},
	}
	for _, tt := range tests {
		if got := sanitizeRequestID(tt.in); got != tt.want {
			t.Errorf("sanitizeRequestID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("logs completed requests with the request ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		h := ApplyMiddlewares(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}), RequestIDMiddleware(), LoggingMiddleware(logger))

		req := httptest.NewRequest(http.MethodGet, "/brew", nil)
		req.Header.Set(requestIDHeader, "rid-1")
		h.ServeHTTP(httptest.NewRecorder(), req)

		out := buf.String()
		for _, want := range []string{"request completed", "path=/brew", "status=418", "request_id=rid-1", "level=WARN"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected log to contain %q, got %q", want, out)
			}
		}
	})

	t.Run("recovers panics with a 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		h := LoggingMiddleware(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("kaboom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if !strings.Contains(buf.String(), "panic recovered") || !strings.Contains(buf.String(), "kaboom") {
			t.Errorf("expected the panic to be logged, got %q", buf.String())
		}
	})

	t.Run("keeps the status of a handler that panics after writing", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.DiscardHandler)
		h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("late")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusAccepted {
			t.Errorf("expected 202, got %d", rec.Code)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("rejects requests over the burst", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.DiscardHandler)
		h := RateLimitMiddleware(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}, logger)(okHandler())

		codes := make([]int, 0, 3)
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
			if rec.Code == http.StatusTooManyRequests && rec.Header().Get("Retry-After") != "1" {
				t.Error("expected a Retry-After header")
			}
		}
		if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
			t.Errorf("unexpected status codes %v", codes)
		}
	})

	t.Run("limits each client separately", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.DiscardHandler)
		h := RateLimitMiddleware(RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}, logger)(okHandler())

		for _, addr := range []string{"192.0.2.1:1", "192.0.2.2:1"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", addr, rec.Code)
			}
		}
	})

	t.Run("ignores spoofed forwarded addresses", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.DiscardHandler)
		h := RateLimitMiddleware(RateLimitConfig{RequestsPerSecond: 1, Burst: 1}, logger)(okHandler())

		passed := 0
		for i := range 50 {
			req := httptest.NewRequest(http.MethodPost, "/update", nil)
			req.RemoteAddr = "203.0.113.7:4000"
			req.Header.Set(forwardedForHeader, "10.0.0."+strconv.Itoa(i))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code == http.StatusOK {
				passed++
			}
		}
		if passed != 1 {
			t.Errorf("expected one request through, got %d", passed)
		}
	})

	t.Run("is a no-op when disabled", func(t *testing.T) {
		t.Parallel()

		h := RateLimitMiddleware(RateLimitConfig{}, nil)(okHandler())
		for range 100 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
		}
	})
}

func TestClientKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remote     string
		xff        []string
		trustProxy bool
		want       string
	}{
		{name: "remote address host", remote: "192.0.2.1:5555", want: "192.0.2.1"},
		{name: "forwarded header ignored by default", remote: "203.0.113.7:1", xff: []string{"198.51.100.7"}, want: "203.0.113.7"},
		{name: "trusted proxy uses the appended entry", remote: "127.0.0.1:1", xff: []string{"10.9.9.9, 198.51.100.7"}, trustProxy: true, want: "198.51.100.7"},
		{name: "trusted proxy reads the last header line", remote: "127.0.0.1:1", xff: []string{"10.9.9.9", "198.51.100.8"}, trustProxy: true, want: "198.51.100.8"},
		{name: "trusted proxy without the header", remote: "127.0.0.1:1", trustProxy: true, want: "127.0.0.1"},
		{name: "remote address without port", remote: "socket", want: "socket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for _, v := range tt.xff {
				req.Header.Add(forwardedForHeader, v)
			}
			if got := clientKey(req, tt.trustProxy); got != tt.want {
				t.Errorf("clientKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
