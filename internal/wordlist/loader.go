package wordlist

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/crypto/sha3"
)

// maxLineSize bounds a single wordlist line. Real lists hold short entries;
// the limit only protects against binary files being passed by mistake.
const maxLineSize = 1024 * 1024

// Read builds a Set from line-oriented text.
func Read(r io.Reader) (*Set, error) {
	words, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return newSetFromNormalized(m), nil
}

// ReadLines returns the normalized, non-empty lines of r in input order.
// Duplicates are kept; callers that need set semantics use Read.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	for scanner.Scan() {
		if w := Normalize(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return words, nil
}

// Load reads the wordlist at path. An empty path yields an empty set without
// logging. Any failure to open or read the file is logged as a warning and
// also yields an empty set; loading never aborts analysis.
func Load(path string, logger *slog.Logger) *Set {
	if path == "" {
		return NewSet()
	}
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path) //nolint:gosec // User-provided wordlist path is intentional
	if err != nil {
		logger.Warn("could not open common-passwords file", "path", path, "error", err)
		return NewSet()
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		logger.Warn("could not read common-passwords file", "path", path, "error", err)
		return NewSet()
	}

	logger.Debug("common-passwords file loaded", "path", path, "entries", set.Len())
	return set
}

// Fingerprint returns a stable SHA3-256 digest of a collection of normalized
// words. Order and duplicates do not affect the result.
func Fingerprint(words []string) string {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h := sha3.New256()
	for _, w := range sorted {
		_, _ = h.Write([]byte(w)) //nolint:errcheck // hash.Hash never returns an error
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
