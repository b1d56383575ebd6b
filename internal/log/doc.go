// Package log builds the application's slog loggers.
//
// Every logger produced here wraps its output handler in a SecureHandler,
// which replaces the value of any attribute whose key refers to a password
// with MaskValue. The analyzer never logs candidates on purpose; the handler
// guarantees that a stray attribute cannot leak one either, at any level.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("analyzing", "candidate", pw)    // candidate=***REDACTED***
//	logger.Warn("wordlist missing", "path", path) // path is kept
package log
