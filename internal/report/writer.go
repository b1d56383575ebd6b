package report

import (
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/pwstrength/internal/strength"
)

// Entry is one rendered result.
//
// Design decision: Entry carries a Label and a Result but never the password.
// Writers cannot print what they are not given, so adding a new format can
// not introduce a leak. Callers that need to identify an entry use the label.
type Entry struct {
	// Label identifies the entry, e.g. "#3" for the third line of a list.
	// It is empty in interactive mode.
	Label string

	Result *strength.Result
}

// Writer outputs analysis results.
// Implementations are not safe for concurrent use.
type Writer interface {
	// Write renders entry and returns the number of bytes written.
	Write(entry Entry) (int, error)
}

// MultiWriter writes each entry to several Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs entry to every Writer. It stops on the first error and
// returns the total bytes written so far.
func (m *MultiWriter) Write(entry Entry) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(entry)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// ratingLabel returns the display name of a rating, e.g. "Strong".
func ratingLabel(r strength.Rating) string {
	return cases.Title(language.English).String(r.String())
}
