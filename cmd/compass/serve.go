package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/compass/internal/config"
	compasslog "github.com/nao1215/compass/internal/log"
	"github.com/nao1215/compass/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the workbook in your browser",
		Long: `Serve starts a local web server for the Founder's Compass workbook.

Open the printed address in a browser, work through the ten sections and
download your responses from the last section. Answers are held in memory
for the session only and are never written to disk by the server.

Examples:
  # Serve on the default address (127.0.0.1:8080)
  compass serve

  # Serve on another port with the compact layout
  compass serve --addr 127.0.0.1:9000 --layout compact

Configuration file (.compass) example:
  addr: 127.0.0.1:8080
  layout: wide
  sessionTTL: 2h
  logFormat: text
  rateLimit:
    requestsPerSecond: 5
    burst: 20
    trustProxy: false`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", "",
		fmt.Sprintf("Listen address (default %s)", config.DefaultAddr))
	cmd.Flags().StringP("layout", "l", "",
		fmt.Sprintf("Default layout: %s or %s (default %s)", config.LayoutWide, config.LayoutCompact, config.DefaultLayout))
	cmd.Flags().Duration("session-ttl", 0,
		fmt.Sprintf("Idle time before a session is discarded (default %s)", config.DefaultSessionTTL))
	cmd.Flags().String("log-format", "",
		fmt.Sprintf("Log format: %s or %s (default %s)", config.LogFormatText, config.LogFormatJSON, config.DefaultLogFormat))
	cmd.Flags().Bool("trust-proxy", false,
		"Rate limit clients by X-Forwarded-For (only behind a reverse proxy)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newServerLogger(cmd.ErrOrStderr(), cfg)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Founder's Compass is running at http://%s/\n", cfg.Addr)
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop.")

	return srv.Run(ctx)
}

// newServerLogger returns the request logger in the configured format.
// The server logs requests at Info unless verbose.
func newServerLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	if cfg.LogFormat == config.LogFormatJSON {
		return compasslog.NewJSONLogger(w, level)
	}
	return compasslog.NewLeveledLogger(w, level)
}

// buildServeConfig applies serve flags on top of the loaded configuration.
// Flags left empty keep the configured values.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	layout, err := cmd.Flags().GetString("layout")
	if err != nil {
		return nil, err
	}
	if layout != "" {
		cfg.Layout = layout
	}

	ttl, err := cmd.Flags().GetDuration("session-ttl")
	if err != nil {
		return nil, err
	}
	if ttl != 0 {
		cfg.SessionTTL = ttl
	}

	logFormat, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	trustProxy, err := cmd.Flags().GetBool("trust-proxy")
	if err != nil {
		return nil, err
	}
	if trustProxy {
		cfg.TrustProxy = true
	}

	return cfg, nil
}
