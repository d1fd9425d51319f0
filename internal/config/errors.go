package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidAddr is returned when the listen address is not "host:port".
	ErrInvalidAddr = errors.New("invalid listen address: must be host:port")

	// ErrInvalidLayout is returned when the layout is neither wide nor compact.
	ErrInvalidLayout = errors.New("invalid layout: must be wide or compact")

	// ErrInvalidSessionTTL is returned when the session TTL is not positive.
	// A zero TTL would discard every session immediately.
	ErrInvalidSessionTTL = errors.New("invalid session TTL: must be positive")

	// ErrInvalidMaxSessions is returned when the session cap is not positive.
	ErrInvalidMaxSessions = errors.New("invalid max sessions: must be positive")

	// ErrInvalidRateLimit is returned when the rate is negative, or positive
	// with a burst that would never admit a request.
	ErrInvalidRateLimit = errors.New("invalid rate limit: rate must be non-negative and burst positive")

	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is not positive.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout: must be positive")

	// ErrInvalidLogFormat is returned when the log format is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConflictingReportFormats is returned when several report formats
	// are combined with a single --output file. Without --output every
	// format is saved under its own file name.
	ErrConflictingReportFormats = errors.New("conflicting report formats: several formats need separate files, drop --output")
)
