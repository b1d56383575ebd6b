package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/pwstrength/internal/strength"
	"github.com/nao1215/pwstrength/internal/wordlist"
)

const secret = "xx1234yy"

// analyze runs the default analyzer on password.
func analyze(t *testing.T, password string) *strength.Result {
	t.Helper()
	return strength.NewAnalyzer(wordlist.NewSet("letmein")).Analyze(password)
}

// TestSimpleWriter tests the terminal layout.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes score entropy and feedback", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := analyze(t, "password123")
		if _, err := NewSimpleWriter(&buf).Write(Entry{Result: r}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Score: 60 / 100\n" +
			"Estimated entropy (pool-based): 56.87 bits\n" +
			"Estimated entropy (Shannon): 36.05 bits\n" +
			"Feedback:\n" +
			" - contains a common substring: 'password'\n" +
			" - consider a longer passphrase (12+ characters recommended)\n\n"
		if buf.String() != want {
			t.Errorf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
		}
	})

	t.Run("weak result gets recommendation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(Entry{Result: analyze(t, "9876")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Recommendation: "+strength.Recommendation) {
			t.Errorf("expected recommendation, got:\n%s", buf.String())
		}
	})

	t.Run("strong result has no recommendation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(Entry{Result: analyze(t, "Tr0ub4dor&3")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "Recommendation:") {
			t.Errorf("unexpected recommendation:\n%s", buf.String())
		}
	})

	t.Run("label and rating", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithRating(true))
		if _, err := w.Write(Entry{Label: "#2", Result: analyze(t, "Tr0ub4dor&3")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "[#2]\nScore: 85 / 100\nRating: Strong\n") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(Entry{Result: analyze(t, "")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "Score: 0 / 100") || !strings.Contains(out, " - empty password\n") {
			t.Errorf("unexpected output:\n%s", out)
		}
		if !strings.Contains(out, "Estimated entropy (pool-based): 0.00 bits") {
			t.Errorf("expected zero entropy, got:\n%s", out)
		}
	})
}

// TestJSONWriter tests JSON output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output is one line per entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		for _, pw := range []string{"password123", "9876"} {
			if _, err := w.Write(Entry{Label: "#1", Result: analyze(t, pw)}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}

		var got map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got["label"] != "#1" {
			t.Errorf("expected label #1, got %v", got["label"])
		}
		if got["score"] != float64(60) {
			t.Errorf("expected score 60, got %v", got["score"])
		}
		if got["rating"] != "good" {
			t.Errorf("expected rating good, got %v", got["rating"])
		}
		if _, ok := got["recommendation"]; ok {
			t.Error("expected no recommendation for score 60")
		}
		if _, ok := got["reasons"].([]any); !ok {
			t.Error("expected reasons array")
		}

		var weak JSONEntry
		if err := json.Unmarshal([]byte(lines[1]), &weak); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if weak.Recommendation != strength.Recommendation {
			t.Errorf("expected recommendation, got %q", weak.Recommendation)
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(Entry{Result: analyze(t, "abc")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"score\": ") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}
		if strings.Contains(buf.String(), "\"label\"") {
			t.Error("expected empty label to be omitted")
		}
	})
}

// TestMarkdownWriter tests Markdown output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		alert    string
	}{
		{name: "weak", password: "9876", alert: "[!CAUTION]"},
		{name: "fair", password: secret, alert: "[!WARNING]"},
		{name: "good", password: "password123", alert: "[!NOTE]"},
		{name: "strong", password: "Tr0ub4dor&3", alert: "[!TIP]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			n, err := NewMarkdownWriter(&buf).Write(Entry{Label: "#1", Result: analyze(t, tt.password)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n == 0 {
				t.Error("expected non-zero byte count")
			}

			out := buf.String()
			if !strings.Contains(out, "## Password Strength #1") {
				t.Errorf("expected heading, got:\n%s", out)
			}
			if !strings.Contains(out, "| Property") {
				t.Errorf("expected property table, got:\n%s", out)
			}
			if !strings.Contains(out, tt.alert) {
				t.Errorf("expected alert %s, got:\n%s", tt.alert, out)
			}
		})
	}
}

// TestWritersNeverContainPassword checks every format against leaking input.
func TestWritersNeverContainPassword(t *testing.T) {
	t.Parallel()

	var simple, js, md bytes.Buffer
	w := NewMultiWriter(
		NewSimpleWriter(&simple, WithRating(true)),
		NewJSONWriter(&js),
		NewMarkdownWriter(&md),
	)
	if _, err := w.Write(Entry{Label: "#1", Result: analyze(t, secret)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, buf := range map[string]*bytes.Buffer{"simple": &simple, "json": &js, "markdown": &md} {
		if buf.Len() == 0 {
			t.Errorf("%s: expected output", name)
		}
		if strings.Contains(buf.String(), secret) {
			t.Errorf("%s: output contains the password", name)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(Entry) (int, error) {
	return 3, errors.New("disk full")
}

// TestMultiWriter tests fan-out and error propagation.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		w := NewMultiWriter(failingWriter{}, NewSimpleWriter(&after))
		n, err := w.Write(Entry{Result: analyze(t, "abc")})
		if err == nil {
			t.Fatal("expected error")
		}
		if n != 3 {
			t.Errorf("expected 3 bytes, got %d", n)
		}
		if after.Len() != 0 {
			t.Error("expected later writers to be skipped")
		}
	})

	t.Run("sums byte counts", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		n, err := NewMultiWriter(NewSimpleWriter(&a), NewSimpleWriter(&b)).Write(Entry{Result: analyze(t, "abc")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != a.Len()+b.Len() {
			t.Errorf("expected %d bytes, got %d", a.Len()+b.Len(), n)
		}
	})
}
