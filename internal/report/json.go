package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/pwstrength/internal/strength"
)

// JSONWriter outputs one JSON object per entry. Compact output is
// newline-delimited JSON.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONEntry is the serialized form of an Entry.
type JSONEntry struct {
	Label string `json:"label,omitempty"`

	*strength.Result

	Rating strength.Rating `json:"rating"`

	// Recommendation is set only for results that need it.
	Recommendation string `json:"recommendation,omitempty"`
}

// NewJSONEntry builds the serialized form of entry.
func NewJSONEntry(entry Entry) *JSONEntry {
	e := &JSONEntry{
		Label:  entry.Label,
		Result: entry.Result,
		Rating: entry.Result.Rating(),
	}
	if entry.Result.NeedsRecommendation() {
		e.Recommendation = strength.Recommendation
	}
	return e
}

// Write outputs entry as a JSON object followed by a newline.
func (w *JSONWriter) Write(entry Entry) (int, error) {
	return w.writeJSON(NewJSONEntry(entry))
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	data = append(data, '\n')

	return w.output.Write(data)
}
