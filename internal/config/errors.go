package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidSequenceWindow is returned when the sequence window is below 2.
	// Smaller windows would flag every non-empty password.
	ErrInvalidSequenceWindow = errors.New("invalid sequence window: must be at least 2")

	// ErrInvalidRepeatRun is returned when the repeat run length is below 2.
	ErrInvalidRepeatRun = errors.New("invalid repeat run: must be at least 2")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingWordlistSources is returned when both a wordlist file and a
	// cached wordlist name are given.
	ErrConflictingWordlistSources = errors.New("conflicting wordlist sources: --wordlist and --wordlist-name cannot be used together")

	// ErrUnknownFormat is returned when the config file names an unsupported format.
	ErrUnknownFormat = errors.New("unknown report format: must be text, json or markdown")
)
