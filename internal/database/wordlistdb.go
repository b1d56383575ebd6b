package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/pwstrength/internal/wordlist"
)

// DBFileName is the database file name inside the data directory.
const DBFileName = "pwstrength.db"

// ErrWordlistNotFound is returned when a named wordlist is not in the cache.
var ErrWordlistNotFound = errors.New("wordlist not found")

// ErrEmptyName is returned when a wordlist name is empty.
var ErrEmptyName = errors.New("wordlist name must not be empty")

// WordlistDB stores named common-password lists in SQLite.
type WordlistDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures WordlistDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// WordlistInfo describes a cached wordlist.
type WordlistInfo struct {
	Name        string
	Source      string
	Count       int
	Fingerprint string
	ImportedAt  time.Time
}

// ImportResult reports the outcome of ImportWordlist.
type ImportResult struct {
	// Count is the number of distinct entries stored.
	Count int

	// Skipped is true when the stored list already had the same contents.
	Skipped bool

	Fingerprint string
}

// Open opens or creates the cache database inside dbDir.
func Open(dbDir string, opts Options) (*WordlistDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	mode := "rw"
	if opts.CreateIfNotExists {
		mode = "rwc"
	}

	db, err := sql.Open("sqlite", dbPath+"?mode="+mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	wdb := &WordlistDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := wdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return wdb, nil
}

// Path returns the database file path.
func (w *WordlistDB) Path() string {
	return w.dbPath
}

// Close closes the database connection.
func (w *WordlistDB) Close() error {
	return w.db.Close()
}

func (w *WordlistDB) createTables() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS wordlists (
		name TEXT PRIMARY KEY,
		source TEXT NOT NULL DEFAULT '',
		entry_count INTEGER NOT NULL,
		fingerprint TEXT NOT NULL,
		imported_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS wordlist_entries (
		wordlist TEXT NOT NULL REFERENCES wordlists(name) ON DELETE CASCADE,
		word TEXT NOT NULL,
		PRIMARY KEY (wordlist, word)
	) WITHOUT ROWID;
	`
	_, err := w.db.ExecContext(context.Background(), schema)
	return err
}

// ImportWordlist normalizes words and stores them under name, replacing any
// list already stored under that name. When the stored list has identical
// contents the import is skipped.
func (w *WordlistDB) ImportWordlist(ctx context.Context, name, source string, words []string) (ImportResult, error) {
	if name == "" {
		return ImportResult{}, ErrEmptyName
	}

	set := wordlist.NewSet(words...)
	entries := set.Words()
	fingerprint := wordlist.Fingerprint(entries)

	var existing string
	err := w.db.QueryRowContext(ctx, "SELECT fingerprint FROM wordlists WHERE name = ?", name).Scan(&existing)
	switch {
	case err == nil && existing == fingerprint:
		return ImportResult{Count: len(entries), Skipped: true, Fingerprint: fingerprint}, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return ImportResult{}, fmt.Errorf("failed to look up wordlist: %w", err)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM wordlist_entries WHERE wordlist = ?", name); err != nil {
		return ImportResult{}, fmt.Errorf("failed to clear wordlist: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO wordlists (name, source, entry_count, fingerprint, imported_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		source = excluded.source,
		entry_count = excluded.entry_count,
		fingerprint = excluded.fingerprint,
		imported_at = excluded.imported_at
	`, name, source, len(entries), fingerprint, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to save wordlist: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO wordlist_entries (wordlist, word) VALUES (?, ?)")
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range entries {
		if _, err := stmt.ExecContext(ctx, name, word); err != nil {
			return ImportResult{}, fmt.Errorf("failed to insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("failed to commit wordlist: %w", err)
	}

	return ImportResult{Count: len(entries), Fingerprint: fingerprint}, nil
}

// LoadWordlist returns the named list as a Set.
func (w *WordlistDB) LoadWordlist(ctx context.Context, name string) (*wordlist.Set, error) {
	if _, err := w.GetWordlist(ctx, name); err != nil {
		return nil, err
	}

	rows, err := w.db.QueryContext(ctx, "SELECT word FROM wordlist_entries WHERE wordlist = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return wordlist.NewSet(words...), nil
}

// GetWordlist returns metadata for the named list.
func (w *WordlistDB) GetWordlist(ctx context.Context, name string) (*WordlistInfo, error) {
	row := w.db.QueryRowContext(ctx, `
	SELECT name, source, entry_count, fingerprint, imported_at
	FROM wordlists WHERE name = ?
	`, name)

	info, err := scanInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrWordlistNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wordlist: %w", err)
	}
	return info, nil
}

// ListWordlists returns metadata for every cached list, ordered by name.
func (w *WordlistDB) ListWordlists(ctx context.Context) ([]WordlistInfo, error) {
	rows, err := w.db.QueryContext(ctx, `
	SELECT name, source, entry_count, fingerprint, imported_at
	FROM wordlists ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wordlists: %w", err)
	}
	defer rows.Close()

	var out []WordlistInfo
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wordlist: %w", err)
		}
		out = append(out, *info)
	}
	return out, rows.Err()
}

// DeleteWordlist removes the named list and its entries.
func (w *WordlistDB) DeleteWordlist(ctx context.Context, name string) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM wordlist_entries WHERE wordlist = ?", name); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM wordlists WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete wordlist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete wordlist: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrWordlistNotFound, name)
	}

	return tx.Commit()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInfo(s rowScanner) (*WordlistInfo, error) {
	var info WordlistInfo
	var importedAt string
	if err := s.Scan(&info.Name, &info.Source, &info.Count, &info.Fingerprint, &importedAt); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, importedAt); err == nil {
		info.ImportedAt = t
	}
	return &info, nil
}
