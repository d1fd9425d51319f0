package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultAddr binds the workbook server to the loopback interface.
	// The workbook holds personal answers and has no authentication, so it
	// is not exposed on other interfaces unless asked.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultLayout is the layout used when a browser has not chosen one.
	DefaultLayout = LayoutWide

	// DefaultSessionTTL is how long an idle workbook session is kept in
	// memory. Answers are never written to disk, so this is also how long
	// a user can step away without losing their work.
	DefaultSessionTTL = 2 * time.Hour

	// DefaultMaxSessions caps the number of sessions held in memory.
	DefaultMaxSessions = 1000

	// DefaultRequestsPerSecond and DefaultBurst configure the per-client
	// token bucket. A user typing into the form posts one update per
	// changed field, which stays well inside these limits.
	DefaultRequestsPerSecond = 5.0
	DefaultBurst             = 20

	// DefaultShutdownTimeout bounds graceful shutdown of the server.
	DefaultShutdownTimeout = 15 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "compass"
)

// Layout modes of the web UI. Both render the same state; they differ in
// how idea scoring is laid out (a table or one card per idea).
const (
	LayoutWide    = "wide"
	LayoutCompact = "compact"
)

// Log formats of the server.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultLogFormat is the server log format.
const DefaultLogFormat = LogFormatText

// ValidLayout reports whether s names a layout mode.
func ValidLayout(s string) bool {
	return s == LayoutWide || s == LayoutCompact
}

// Config holds all configuration options for compass.
// It is populated from defaults, the config file and CLI flags, in that
// order, and passed down explicitly rather than kept in global state.
type Config struct {
	// Addr is the listen address of the workbook server in "host:port" form.
	Addr string

	// Layout is the default layout mode of the web UI.
	Layout string

	// SessionTTL is the idle time after which a session is discarded.
	SessionTTL time.Duration

	// MaxSessions is the maximum number of live sessions. When full, the
	// least recently used session is evicted.
	MaxSessions int

	// RequestsPerSecond is the sustained per-client request rate.
	// Zero disables rate limiting.
	RequestsPerSecond float64

	// Burst is the per-client token bucket size.
	Burst int

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// TrustProxy makes the rate limiter identify clients by the
	// X-Forwarded-For entry of a reverse proxy. Only safe behind one.
	TrustProxy bool

	// LogFormat selects text or JSON server logs.
	LogFormat string

	// OutputDir is where exported reports are written when no explicit
	// output path is given. Defaults to the user's download directory.
	OutputDir string

	// Verbose enables detailed log output using slog.LevelDebug.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the usual locations.
	ConfigFilePath string

	// HTMLReport selects the printable HTML report for the export command.
	// It is the default when no format is selected.
	HTMLReport bool

	// JSONReport selects JSON output for the export command.
	JSONReport bool

	// MarkdownReport selects Markdown output for the export command.
	// Several selected formats are each written to their own file, which
	// rules out a single ReportFile.
	MarkdownReport bool

	// ReportFile is the output file path for an exported report.
	// When empty, the report is saved under OutputDir with the default name.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Addr:              DefaultAddr,
		Layout:            DefaultLayout,
		SessionTTL:        DefaultSessionTTL,
		MaxSessions:       DefaultMaxSessions,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
		ShutdownTimeout:   DefaultShutdownTimeout,
		LogFormat:         DefaultLogFormat,
		OutputDir:         DefaultOutputDir(),
	}
}

// DefaultOutputDir returns the user's download directory.
// On Linux this comes from XDG_DOWNLOAD_DIR (usually ~/Downloads).
func DefaultOutputDir() string {
	return xdg.UserDirs.Download
}

// XDGConfigDir returns the XDG config directory for compass.
// On Linux: ~/.config/compass
// On macOS: ~/Library/Application Support/compass
// On Windows: %APPDATA%\compass
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found, wrapping one of the sentinel errors.
func (c *Config) Validate() error {
	if err := validateAddr(c.Addr); err != nil {
		return err
	}

	if !ValidLayout(c.Layout) {
		return fmt.Errorf("%w: %q", ErrInvalidLayout, c.Layout)
	}

	if c.SessionTTL <= 0 {
		return ErrInvalidSessionTTL
	}

	if c.MaxSessions <= 0 {
		return ErrInvalidMaxSessions
	}

	if c.RequestsPerSecond < 0 || (c.RequestsPerSecond > 0 && c.Burst <= 0) {
		return ErrInvalidRateLimit
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	// A single report file can hold only one format.
	if c.ReportFile != "" && c.reportFormatCount() > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}

func (c *Config) reportFormatCount() int {
	n := 0
	for _, on := range []bool{c.HTMLReport, c.JSONReport, c.MarkdownReport} {
		if on {
			n++
		}
	}
	return n
}

// validateAddr checks a "host:port" listen address. The host may be empty
// (all interfaces); the port must be a number in 0..65535.
func validateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidAddr, addr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%w: %q: bad port", ErrInvalidAddr, addr)
	}
	return nil
}
