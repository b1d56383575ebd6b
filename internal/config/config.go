package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultSequenceWindow is the number of consecutive +1/-1 steps that
	// count as a keyboard-style sequence ("abcd", "4321").
	DefaultSequenceWindow = 4

	// DefaultRepeatRun is the number of identical characters in a row that
	// count as a repeated run ("aaaa").
	DefaultRepeatRun = 4

	// DefaultBatchSize is the number of passwords analyzed concurrently in
	// list mode. Analysis is CPU bound and cheap, so this mostly bounds
	// memory for very large lists.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "pwstrength"
)

// Format selects the report renderer.
type Format string

// Supported report formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Config holds all configuration options for pwstrength.
// It is built from defaults, then the config file, then explicit flags, and
// passed down explicitly rather than kept in global state.
type Config struct {
	// SequenceWindow is the run length of the sequence detector.
	SequenceWindow int

	// RepeatRun is the run length of the repeated-character detector.
	RepeatRun int

	// WordlistPath is a text file of common passwords, one per line.
	// Empty disables the file source.
	WordlistPath string

	// WordlistName selects a wordlist previously imported into the cache
	// database. Mutually exclusive with WordlistPath.
	WordlistName string

	// DBDir is the directory holding the wordlist cache database.
	// Defaults to the XDG data directory (~/.local/share/pwstrength on Linux).
	DBDir string

	// BatchSize is the number of concurrent analyses in list mode.
	BatchSize int

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile redirects reports to a file instead of stdout.
	ReportFile string

	// ListFile switches from the interactive shell to batch analysis of every
	// line of the named file.
	ListFile string

	// HideInput disables terminal echo while typing passwords interactively.
	// It has no effect when stdin is not a terminal.
	HideInput bool

	// ShowRating adds the weak/fair/good/strong band to text reports.
	ShowRating bool

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SequenceWindow: DefaultSequenceWindow,
		RepeatRun:      DefaultRepeatRun,
		BatchSize:      DefaultBatchSize,
		DBDir:          XDGDataDir(),
		HideInput:      true,
	}
}

// XDGDataDir returns the XDG data directory for pwstrength.
// On Linux: ~/.local/share/pwstrength
// On macOS: ~/Library/Application Support/pwstrength
// On Windows: %LOCALAPPDATA%\pwstrength
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pwstrength.
// On Linux: ~/.config/pwstrength
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Format returns the selected report format.
func (c *Config) Format() Format {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.SequenceWindow < 2 {
		return ErrInvalidSequenceWindow
	}
	if c.RepeatRun < 2 {
		return ErrInvalidRepeatRun
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.WordlistPath != "" && c.WordlistName != "" {
		return ErrConflictingWordlistSources
	}
	return nil
}

// Apply copies every value set in the file onto c. Zero values in the file
// leave c unchanged.
func (c *Config) Apply(f *File) error {
	if f == nil {
		return nil
	}
	if f.SequenceWindow != 0 {
		c.SequenceWindow = f.SequenceWindow
	}
	if f.RepeatRun != 0 {
		c.RepeatRun = f.RepeatRun
	}
	if f.Wordlist != "" {
		c.WordlistPath = f.Wordlist
	}
	if f.WordlistName != "" {
		c.WordlistName = f.WordlistName
	}
	if f.BatchSize != 0 {
		c.BatchSize = f.BatchSize
	}
	if f.ShowRating != nil {
		c.ShowRating = *f.ShowRating
	}
	if f.HideInput != nil {
		c.HideInput = *f.HideInput
	}

	switch Format(f.Format) {
	case "":
	case FormatText:
		c.JSONReport, c.MarkdownReport = false, false
	case FormatJSON:
		c.JSONReport, c.MarkdownReport = true, false
	case FormatMarkdown:
		c.JSONReport, c.MarkdownReport = false, true
	default:
		return ErrUnknownFormat
	}
	return nil
}
