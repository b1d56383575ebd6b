package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/pwstrength/internal/strength"
)

// MarkdownWriter outputs one Markdown section per entry: a property table,
// a feedback table, and a GitHub alert chosen by rating.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs entry as a Markdown section.
func (w *MarkdownWriter) Write(entry Entry) (int, error) {
	md := markdown.NewMarkdown(w.output)
	r := entry.Result

	title := "Password Strength"
	if entry.Label != "" {
		title += " " + entry.Label
	}
	md.H2(title)
	md.PlainText("")

	w.writeProperties(md, r)
	w.writeFeedback(md, r)
	w.writeAlert(md, r)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeProperties(md *markdown.Markdown, r *strength.Result) {
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Score", "**" + strconv.Itoa(r.Score) + "** / 100"},
			{"Rating", ratingLabel(r.Rating())},
			{"Length", strconv.Itoa(r.Length)},
			{"Entropy (pool-based)", fmt.Sprintf("%.2f bits", r.PoolEntropyBits)},
			{"Entropy (Shannon)", fmt.Sprintf("%.2f bits", r.ShannonEntropyBits)},
			{"Character classes", classList(r.Classes)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFeedback(md *markdown.Markdown, r *strength.Result) {
	rows := make([][]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		penalty := "-"
		if reason.Penalty > 0 {
			penalty = "-" + strconv.FormatFloat(reason.Penalty, 'f', -1, 64)
		}
		rows[i] = []string{"`" + string(reason.Code) + "`", reason.Message, penalty}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Code", "Feedback", "Penalty"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, r *strength.Result) {
	switch r.Rating() {
	case strength.RatingWeak:
		md.Cautionf("Weak password (score %d). %s", r.Score, strength.Recommendation)
	case strength.RatingFair:
		md.Warningf("Fair password (score %d). Longer passphrases score higher.", r.Score)
	case strength.RatingGood:
		md.Note("Good password.")
	default:
		md.Tip("Strong password.")
	}
	md.PlainText("")
}

// classList names the character classes present, e.g. "lower, digit".
func classList(c strength.Classes) string {
	var names []string
	if c.Lower {
		names = append(names, "lower")
	}
	if c.Upper {
		names = append(names, "upper")
	}
	if c.Digit {
		names = append(names, "digit")
	}
	if c.Symbol {
		names = append(names, "symbol")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
