package config

import "time"

// File represents the structure of the .compass configuration file.
// Every field is optional; zero values leave the current setting alone.
type File struct {
	// Addr is the listen address of the workbook server.
	Addr string `yaml:"addr,omitempty"`

	// OutputDir is the default directory for exported reports.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Layout is the default layout mode ("wide" or "compact").
	Layout string `yaml:"layout,omitempty"`

	// SessionTTL is the idle session lifetime, e.g. "2h" or "90m".
	SessionTTL time.Duration `yaml:"sessionTTL,omitempty"`

	// MaxSessions caps the number of sessions held in memory.
	MaxSessions int `yaml:"maxSessions,omitempty"`

	// ShutdownTimeout bounds graceful shutdown, e.g. "15s".
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty"`

	// RateLimit configures per-client request throttling.
	RateLimit RateLimitFile `yaml:"rateLimit,omitempty"`

	// LogFormat is the server log format ("text" or "json").
	LogFormat string `yaml:"logFormat,omitempty"`
}

// RateLimitFile is the rateLimit section of the configuration file.
type RateLimitFile struct {
	// RequestsPerSecond is the sustained rate. An explicit 0 disables
	// rate limiting, so it is a pointer to tell it apart from "unset".
	RequestsPerSecond *float64 `yaml:"requestsPerSecond,omitempty"`

	// Burst is the token bucket size.
	Burst int `yaml:"burst,omitempty"`

	// TrustProxy keys clients on X-Forwarded-For. Enable it only when the
	// server sits behind a reverse proxy that sets the header.
	TrustProxy bool `yaml:"trustProxy,omitempty"`
}

// Apply copies every setting present in the file onto cfg.
// CLI flags are applied afterwards and take precedence.
func (cf *File) Apply(cfg *Config) {
	if cf.Addr != "" {
		cfg.Addr = cf.Addr
	}
	if cf.OutputDir != "" {
		cfg.OutputDir = cf.OutputDir
	}
	if cf.Layout != "" {
		cfg.Layout = cf.Layout
	}
	if cf.SessionTTL != 0 {
		cfg.SessionTTL = cf.SessionTTL
	}
	if cf.MaxSessions != 0 {
		cfg.MaxSessions = cf.MaxSessions
	}
	if cf.ShutdownTimeout != 0 {
		cfg.ShutdownTimeout = cf.ShutdownTimeout
	}
	if cf.RateLimit.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *cf.RateLimit.RequestsPerSecond
	}
	if cf.RateLimit.Burst != 0 {
		cfg.Burst = cf.RateLimit.Burst
	}
	if cf.RateLimit.TrustProxy {
		cfg.TrustProxy = true
	}
	if cf.LogFormat != "" {
		cfg.LogFormat = cf.LogFormat
	}
}
