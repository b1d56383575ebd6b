package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/batch"
	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/database"
	"github.com/nao1215/pwstrength/internal/report"
	"github.com/nao1215/pwstrength/internal/shell"
	"github.com/nao1215/pwstrength/internal/strength"
	"github.com/nao1215/pwstrength/internal/wordlist"
)

// errWordlistGivenTwice is returned when both the positional argument and
// --wordlist name a file.
var errWordlistGivenTwice = errors.New("wordlist given both as argument and with --wordlist")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [common-passwords-file]",
		Short: "Analyze password strength",
		Long: `Check analyzes passwords and prints a score with feedback.

By default it starts an interactive prompt that reads one password per
line until end of input (Ctrl + D). Typed passwords are hidden when stdin
is a terminal. With --list, every line of a file is analyzed and labeled
by its line number; the passwords themselves are never printed.

The optional argument is a common-password list, one entry per line.
Matching is case-insensitive. A missing or unreadable list is reported as
a warning and analysis continues without it.

Examples:
  # Interactive prompt with a common-password list
  pwstrength check rockyou.txt

  # Use a list imported with "pwstrength wordlist import"
  pwstrength check -n rockyou

  # Analyze a file of candidates and write a JSON report
  pwstrength check -l candidates.txt -j -o report.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	cmd.Flags().StringP("wordlist", "w", "",
		"Common-password list file")
	cmd.Flags().StringP("wordlist-name", "n", "",
		"Name of an imported common-password list (see 'pwstrength wordlist')")
	cmd.Flags().StringP("list", "l", "",
		"Analyze every line of this file instead of prompting")
	cmd.Flags().Int("sequence-window", config.DefaultSequenceWindow,
		"Length of ascending or descending runs reported as a sequence")
	cmd.Flags().Int("repeat-run", config.DefaultRepeatRun,
		"Length of identical-character runs reported as repeated")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses with --list")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write results to this file (creates directories if needed)")
	cmd.Flags().Bool("rating", false,
		"Show the weak/fair/good/strong rating in text output")
	cmd.Flags().Bool("show-input", false,
		"Echo typed passwords in the interactive prompt")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pwstrength in current or home directory)")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the wordlist cache database")

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildCheckConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(cmd.Context(), logger)
	defer cancel()

	return runCheck(ctx, cmd, cfg, logger)
}

// signalContext returns a context cancelled on Ctrl-C or SIGTERM.
func signalContext(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildCheckConfig layers defaults, the config file, and explicitly set flags.
func buildCheckConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit config path must exist; the default locations are optional.
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		f, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		if err := cfg.Apply(f); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("wordlist") {
		if cfg.WordlistPath, err = flags.GetString("wordlist"); err != nil {
			return nil, err
		}
		cfg.WordlistName = ""
	}
	if len(args) > 0 {
		if flags.Changed("wordlist") {
			return nil, errWordlistGivenTwice
		}
		cfg.WordlistPath = args[0]
		cfg.WordlistName = ""
	}
	if flags.Changed("wordlist-name") {
		if cfg.WordlistName, err = flags.GetString("wordlist-name"); err != nil {
			return nil, err
		}
		if !flags.Changed("wordlist") && len(args) == 0 {
			cfg.WordlistPath = ""
		}
	}

	if flags.Changed("sequence-window") {
		if cfg.SequenceWindow, err = flags.GetInt("sequence-window"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("repeat-run") {
		if cfg.RepeatRun, err = flags.GetInt("repeat-run"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}

	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("rating") {
		if cfg.ShowRating, err = flags.GetBool("rating"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("show-input") {
		show, err := flags.GetBool("show-input")
		if err != nil {
			return nil, err
		}
		cfg.HideInput = !show
	}

	if cfg.ListFile, err = flags.GetString("list"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.DBDir, err = flags.GetString("db-dir"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runCheck loads the common-password set and dispatches to list or
// interactive mode.
func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	common := loadCommonSet(ctx, cfg, logger)
	logger.Debug("common-password set ready", "entries", common.Len())

	analyzer := strength.NewAnalyzer(common,
		strength.WithSequenceWindow(cfg.SequenceWindow),
		strength.WithRepeatRun(cfg.RepeatRun),
	)

	output, closeOutput, err := openOutput(cfg.ReportFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, output)

	if cfg.ListFile != "" {
		return runList(ctx, cfg, analyzer, writer, logger)
	}
	return runInteractive(ctx, cmd, cfg, analyzer, writer, logger)
}

// loadCommonSet returns the configured common-password set. A list that
// cannot be found or read, whether a file or a cached name, is logged as a
// warning and yields an empty set.
func loadCommonSet(ctx context.Context, cfg *config.Config, logger *slog.Logger) *wordlist.Set {
	if cfg.WordlistName == "" {
		return wordlist.Load(cfg.WordlistPath, logger)
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("could not open wordlist cache", "dir", cfg.DBDir, "error", err)
		return wordlist.NewSet()
	}
	defer db.Close()

	set, err := db.LoadWordlist(ctx, cfg.WordlistName)
	if err != nil {
		logger.Warn("could not load cached wordlist", "name", cfg.WordlistName, "error", err)
		return wordlist.NewSet()
	}
	return set
}

// openOutput returns the report destination. The returned close function is
// always safe to call.
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports reveal which list entries are weak, so only the owner may read them.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter builds the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch cfg.Format() {
	case config.FormatJSON:
		return report.NewJSONWriter(output)
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithRating(cfg.ShowRating))
	}
}

// runList analyzes every line of cfg.ListFile and writes results in file order.
func runList(ctx context.Context, cfg *config.Config, analyzer *strength.Analyzer, writer report.Writer, logger *slog.Logger) error {
	f, err := os.Open(cfg.ListFile) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return fmt.Errorf("failed to open list file: %w", err)
	}
	items, err := batch.ReadList(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("failed to read list file: %w", err)
	}

	p := batch.NewProcessor(analyzer,
		batch.WithConcurrency(cfg.BatchSize),
		batch.WithLogger(logger),
	)
	results, err := p.Process(ctx, batch.Passwords(items))
	if err != nil {
		return err
	}

	for i, r := range results {
		entry := report.Entry{Label: fmt.Sprintf("#%d", items[i].Line), Result: r}
		if _, err := writer.Write(entry); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// runInteractive starts the prompt on the command's stdin.
func runInteractive(ctx context.Context, cmd *cobra.Command, cfg *config.Config, analyzer *strength.Analyzer, writer report.Writer, logger *slog.Logger) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	opts := []shell.Option{
		shell.WithWriter(writer),
		shell.WithLogger(logger),
	}
	if f, ok := in.(*os.File); ok && cfg.HideInput && shell.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		reader := shell.NewTerminalReader(int(f.Fd()), out) //nolint:gosec // fd fits in int
		defer func() {
			if err := reader.Restore(); err != nil {
				logger.Warn("could not restore terminal state", "error", err)
			}
		}()
		opts = append(opts, shell.WithSecretReader(reader))
	}

	return shell.New(in, out, analyzer, opts...).Run(ctx)
}
