package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/nao1215/compass/internal/config"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects an invalid configuration", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Layout = "sideways"
		if _, err := New(cfg, nil); !errors.Is(err, config.ErrInvalidLayout) {
			t.Errorf("expected ErrInvalidLayout, got %v", err)
		}
	})

	t.Run("defaults the logger", func(t *testing.T) {
		t.Parallel()

		s, err := New(config.NewConfig(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.logger == nil {
			t.Error("expected a logger")
		}
	})
}

func TestServe(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	s, err := New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(t.Context(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://"+ln.Addr().String()+"/healthz", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		t.Fatalf("request failed: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected a clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenErrors(t *testing.T) {
	t.Parallel()

	var lc net.ListenConfig
	ln, err := lc.Listen(t.Context(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	cfg := config.NewConfig()
	cfg.Addr = ln.Addr().String()
	s, err := New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(t.Context()); err == nil {
		t.Error("expected an error for an address in use")
	}
}
