package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nao1215/pwstrength/internal/report"
	"github.com/nao1215/pwstrength/internal/strength"
	"github.com/nao1215/pwstrength/internal/wordlist"
)

// recordingAnalyzer captures the strings handed to Analyze.
type recordingAnalyzer struct {
	inner *strength.Analyzer
	seen  []string
}

func (r *recordingAnalyzer) Analyze(pw string) *strength.Result {
	r.seen = append(r.seen, pw)
	return r.inner.Analyze(pw)
}

func newRecorder() *recordingAnalyzer {
	return &recordingAnalyzer{inner: strength.NewAnalyzer(wordlist.NewSet("letmein"))}
}

// TestRun tests the interactive loop.
func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("analyzes each line until EOF", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a := newRecorder()
		s := New(strings.NewReader("letmein\r\nTr0ub4dor&3\nlast"), &out, a)
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"letmein", "Tr0ub4dor&3", "last"}
		if len(a.seen) != len(want) {
			t.Fatalf("expected %d analyses, got %v", len(want), a.seen)
		}
		for i := range want {
			if a.seen[i] != want[i] {
				t.Errorf("line %d: expected %q, got %q", i, want[i], a.seen[i])
			}
		}

		got := out.String()
		if !strings.HasPrefix(got, Banner+Prompt+"\nScore: 5 / 100\n") {
			t.Errorf("unexpected start of session:\n%s", got)
		}
		if strings.Count(got, Prompt) != 4 {
			t.Errorf("expected 4 prompts, got %d", strings.Count(got, Prompt))
		}
		if !strings.HasSuffix(got, Prompt+Farewell) {
			t.Errorf("expected farewell after final prompt, got:\n%s", got)
		}
	})

	t.Run("empty input says goodbye", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a := newRecorder()
		if err := New(strings.NewReader(""), &out, a).Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.String() != Banner+Prompt+Farewell {
			t.Errorf("unexpected output: %q", out.String())
		}
		if len(a.seen) != 0 {
			t.Errorf("expected no analyses, got %v", a.seen)
		}
	})

	t.Run("blank line is analyzed as empty password", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a := newRecorder()
		if err := New(strings.NewReader("\r\n"), &out, a).Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(a.seen) != 1 || a.seen[0] != "" {
			t.Fatalf("expected one empty analysis, got %q", a.seen)
		}
		if !strings.Contains(out.String(), " - empty password\n") {
			t.Errorf("expected empty password feedback, got:\n%s", out.String())
		}
	})

	t.Run("custom writer", func(t *testing.T) {
		t.Parallel()

		var out, js bytes.Buffer
		s := New(strings.NewReader("abc\n"), &out, newRecorder(), WithWriter(report.NewJSONWriter(&js)))
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(js.String(), "{") {
			t.Errorf("expected JSON output, got %q", js.String())
		}
		if strings.Contains(out.String(), "Score:") {
			t.Error("expected results to go only to the custom writer")
		}
	})

	t.Run("cancelled context ends the session normally", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var out bytes.Buffer
		a := newRecorder()
		if err := New(strings.NewReader("abc\n"), &out, a).Run(ctx); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
		if out.String() != Banner+Farewell {
			t.Errorf("unexpected output: %q", out.String())
		}
		if len(a.seen) != 0 {
			t.Errorf("expected no analyses, got %v", a.seen)
		}
	})
}

// TestRunCancelDuringPendingRead tests that Ctrl-C at the prompt ends the
// session while the read is still blocked.
func TestRunCancelDuringPendingRead(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	a := newRecorder()
	done := make(chan error, 1)
	go func() {
		done <- New(pr, &out, a).Run(ctx)
	}()

	// Wait until the shell is blocked on its first read.
	deadline := time.Now().Add(5 * time.Second)
	for !strings.HasSuffix(out.String(), Prompt) {
		if time.Now().After(deadline) {
			t.Fatal("shell never prompted")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if !strings.HasSuffix(out.String(), Prompt+Farewell) {
		t.Errorf("expected farewell after prompt, got %q", out.String())
	}
	if len(a.seen) != 0 {
		t.Errorf("expected no analyses, got %v", a.seen)
	}
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeSecretReader struct {
	lines []string
	err   error
}

func (f *fakeSecretReader) ReadSecret() (string, error) {
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

// TestRunWithSecretReader tests hidden input.
func TestRunWithSecretReader(t *testing.T) {
	t.Parallel()

	t.Run("reads from secret reader", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		a := newRecorder()
		r := &fakeSecretReader{lines: []string{"hunter2\r", "xx1234yy"}}
		s := New(strings.NewReader("ignored\n"), &out, a, WithSecretReader(r))
		if err := s.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(a.seen) != 2 || a.seen[0] != "hunter2" || a.seen[1] != "xx1234yy" {
			t.Errorf("unexpected analyses: %q", a.seen)
		}
		if strings.Contains(out.String(), "hunter2") {
			t.Error("output echoes the password")
		}
	})

	t.Run("read error is returned", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		boom := errors.New("tty gone")
		s := New(strings.NewReader(""), &out, newRecorder(), WithSecretReader(&fakeSecretReader{err: boom}))
		if err := s.Run(context.Background()); !errors.Is(err, boom) {
			t.Errorf("expected %v, got %v", boom, err)
		}
		if strings.Contains(out.String(), "Goodbye") {
			t.Error("unexpected farewell after read error")
		}
	})
}

// TestTrimLine tests terminator stripping.
func TestTrimLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"abc\n", "abc"},
		{"abc\r\n", "abc"},
		{"abc\r\r\n", "abc\r"},
		{"abc", "abc"},
		{"abc\r", "abc"},
		{" abc \n", " abc "},
		{"\n", ""},
	}

	for _, tt := range tests {
		if got := TrimLine(tt.in); got != tt.want {
			t.Errorf("TrimLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
