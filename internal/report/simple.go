package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pwstrength/internal/strength"
)

// SimpleWriter writes the plain terminal layout:
//
//	Score: 62 / 100
//	Estimated entropy (pool-based): 65.55 bits
//	Estimated entropy (Shannon): 36.00 bits
//	Feedback:
//	 - consider a longer passphrase (12+ characters recommended)
type SimpleWriter struct {
	baseWriter

	// showRating adds a "Rating:" line after the score.
	showRating bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithRating enables the rating line.
func WithRating(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showRating = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one result in the terminal layout.
func (w *SimpleWriter) Write(entry Entry) (int, error) {
	r := entry.Result
	var sb strings.Builder

	if entry.Label != "" {
		sb.WriteString(fmt.Sprintf("[%s]\n", entry.Label))
	}

	sb.WriteString(fmt.Sprintf("Score: %d / 100\n", r.Score))
	if w.showRating {
		sb.WriteString(fmt.Sprintf("Rating: %s\n", ratingLabel(r.Rating())))
	}
	sb.WriteString(fmt.Sprintf("Estimated entropy (pool-based): %.2f bits\n", r.PoolEntropyBits))
	sb.WriteString(fmt.Sprintf("Estimated entropy (Shannon): %.2f bits\n", r.ShannonEntropyBits))

	sb.WriteString("Feedback:\n")
	for _, msg := range r.Messages() {
		sb.WriteString(" - ")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}

	if r.NeedsRecommendation() {
		sb.WriteString("Recommendation: ")
		sb.WriteString(strength.Recommendation)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}
