package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/pwstrength/internal/config"
	"github.com/nao1215/pwstrength/internal/database"
	"github.com/nao1215/pwstrength/internal/wordlist"
)

// NewWordlistCmd creates the wordlist command group.
func NewWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage cached common-password lists",
		Long: `Wordlist manages common-password lists stored in a local SQLite cache,
so large lists are parsed once and selected by name with
'pwstrength check --wordlist-name NAME'.

The cache holds list entries only. Analyzed passwords are never stored.`,
	}

	cmd.PersistentFlags().String("db-dir", config.XDGDataDir(),
		"Directory of the wordlist cache database")

	cmd.AddCommand(newWordlistImportCmd())
	cmd.AddCommand(newWordlistListCmd())
	cmd.AddCommand(newWordlistRemoveCmd())

	return cmd
}

func newWordlistImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a common-password list into the cache",
		Long: `Import reads FILE (one entry per line), normalizes every entry, and stores
the list under a name. Importing an unchanged list is a no-op; importing a
changed list replaces the previous version.

Examples:
  # Import as "rockyou"
  pwstrength wordlist import rockyou.txt

  # Import under a custom name
  pwstrength wordlist import top10k.txt --name top`,
		Args: cobra.ExactArgs(1),
		RunE: runWordlistImportCmd,
	}

	cmd.Flags().String("name", "",
		"Name of the cached list (default: file name without extension)")

	return cmd
}

func runWordlistImportCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	if name == "" {
		name = defaultWordlistName(path)
	}

	f, err := os.Open(path) //nolint:gosec // User-provided wordlist path is intentional
	if err != nil {
		return fmt.Errorf("failed to open wordlist: %w", err)
	}
	words, err := wordlist.ReadLines(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	source := path
	if abs, err := filepath.Abs(path); err == nil {
		source = abs
	}

	db, err := openWordlistDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.ImportWordlist(cmd.Context(), name, source, words)
	if err != nil {
		return fmt.Errorf("failed to import wordlist: %w", err)
	}

	out := cmd.OutOrStdout()
	if res.Skipped {
		fmt.Fprintf(out, "Wordlist %q is unchanged (%d entries)\n", name, res.Count)
		return nil
	}
	fmt.Fprintf(out, "Imported %d entries into %q\n", res.Count, name)
	return nil
}

func newWordlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached common-password lists",
		Args:  cobra.NoArgs,
		RunE:  runWordlistListCmd,
	}
}

func runWordlistListCmd(cmd *cobra.Command, _ []string) error {
	db, err := openWordlistDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	lists, err := db.ListWordlists(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list wordlists: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(lists) == 0 {
		fmt.Fprintln(out, "No cached wordlists. Add one with 'pwstrength wordlist import FILE'.")
		return nil
	}

	fmt.Fprintf(out, "%-20s %10s  %-20s  %-12s  %s\n", "NAME", "ENTRIES", "IMPORTED", "FINGERPRINT", "SOURCE")
	for _, l := range lists {
		fmt.Fprintf(out, "%-20s %10d  %-20s  %-12s  %s\n",
			l.Name,
			l.Count,
			l.ImportedAt.Local().Format(time.DateTime),
			shortFingerprint(l.Fingerprint),
			l.Source,
		)
	}
	return nil
}

func newWordlistRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Remove a cached common-password list",
		Args:    cobra.ExactArgs(1),
		RunE:    runWordlistRemoveCmd,
	}
}

func runWordlistRemoveCmd(cmd *cobra.Command, args []string) error {
	db, err := openWordlistDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteWordlist(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove wordlist %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed wordlist %q\n", args[0])
	return nil
}

// openWordlistDB opens the cache in the directory given by --db-dir.
func openWordlistDB(cmd *cobra.Command) (*database.WordlistDB, error) {
	dir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd)
	db, err := database.Open(dir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist cache: %w", err)
	}
	logger.Debug("wordlist cache opened", "path", db.Path())
	return db, nil
}

// defaultWordlistName derives a list name from a file path.
func defaultWordlistName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// shortFingerprint abbreviates a hex digest for display.
func shortFingerprint(fp string) string {
	const n = 12
	if len(fp) > n {
		return fp[:n]
	}
	return fp
}
