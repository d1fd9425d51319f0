// Package log provides logging for compass with automatic redaction of
// workbook content, built on top of the standard slog package.
//
// Workbook answers are personal: business ideas, names of people to talk
// to, pricing plans. The RedactingHandler keeps them out of log output:
//   - Attributes whose key names workbook content (answer, value, text, idea)
//   - Session identifiers and cookies
//   - Credentials such as authorization headers and tokens
//   - Values that look like a session cookie or bearer token
//
// Even in verbose mode, these values are masked so that logs can be shared
// when reporting a problem.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Info("field updated",
//	    "path", "birth.q1",        // kept
//	    "value", "Clinic queues",  // replaced with ***REDACTED***
//	)
//
//	slog.SetDefault(logger)
package log
