package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	seclog "github.com/nao1215/pwstrength/internal/log"
)

// NewRootCmd creates the root command for pwstrength.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwstrength",
		Short: "Offline password strength analyzer",
		Long: `pwstrength estimates how hard a password is to guess.

It reports a 0-100 score, pool-based and Shannon entropy estimates, and
feedback on weaknesses: common passwords, keyboard sequences, repeated
characters, common substrings, short length, and a single character class.

Nothing is sent over the network, and analyzed passwords are never
written to reports, logs, or the wordlist cache.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewWordlistCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the redacting stderr logger selected by --verbose and
// --log-json.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	if asJSON, err := cmd.Flags().GetBool("log-json"); err == nil && asJSON {
		return seclog.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return seclog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}
