package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nao1215/pwstrength/internal/report"
	"github.com/nao1215/pwstrength/internal/strength"
)

// Banner is printed once when the session starts.
const Banner = "Password Strength Analyzer\nType a password and press Enter (Ctrl + D to exit): \n\n"

// Prompt is printed before every read.
const Prompt = "Password: "

// Farewell is printed when input ends.
const Farewell = "\nGoodbye!!!\n"

// Analyzer is the part of *strength.Analyzer the shell needs.
type Analyzer interface {
	Analyze(password string) *strength.Result
}

// SecretReader reads one line without echoing it.
// It returns io.EOF when input is exhausted.
type SecretReader interface {
	ReadSecret() (string, error)
}

// Shell is a synchronous read-analyze-print loop.
type Shell struct {
	in       *bufio.Reader
	secret   SecretReader
	out      io.Writer
	analyzer Analyzer
	writer   report.Writer
	logger   *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithSecretReader reads passwords through r instead of the line reader.
func WithSecretReader(r SecretReader) Option {
	return func(s *Shell) {
		s.secret = r
	}
}

// WithWriter sets the result writer. The default is a SimpleWriter on out.
func WithWriter(w report.Writer) Option {
	return func(s *Shell) {
		s.writer = w
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New creates a Shell reading from in and prompting on out.
func New(in io.Reader, out io.Writer, analyzer Analyzer, opts ...Option) *Shell {
	s := &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		analyzer: analyzer,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.writer == nil {
		s.writer = report.NewSimpleWriter(out)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Run executes the loop until end of input or until ctx is cancelled.
// End of input and cancellation are normal exits and print the farewell;
// other read errors are returned. A read still pending at cancellation is
// abandoned.
func (s *Shell) Run(ctx context.Context) error {
	if _, err := io.WriteString(s.out, Banner); err != nil {
		return err
	}

	for n := 1; ; n++ {
		if ctx.Err() != nil {
			return s.farewell()
		}

		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return err
		}

		password, err := s.readLineContext(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return s.farewell()
			}
			return fmt.Errorf("failed to read password: %w", err)
		}

		result := s.analyzer.Analyze(password)
		s.logger.Debug("analyzed input",
			"index", n,
			"length", result.Length,
			"score", result.Score,
		)

		if _, err := io.WriteString(s.out, "\n"); err != nil {
			return err
		}
		if _, err := s.writer.Write(report.Entry{Result: result}); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
}

func (s *Shell) farewell() error {
	_, err := io.WriteString(s.out, Farewell)
	return err
}

type lineResult struct {
	line string
	err  error
}

// readLineContext runs readLine on its own goroutine so cancellation is not
// held up by a blocking read. Only one read is ever outstanding.
func (s *Shell) readLineContext(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := s.readLine()
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// readLine returns the next line without its terminator. A final line with
// no newline is returned before io.EOF.
func (s *Shell) readLine() (string, error) {
	if s.secret != nil {
		line, err := s.secret.ReadSecret()
		if err != nil {
			return "", err
		}
		return TrimLine(line), nil
	}

	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return TrimLine(line), nil
}

// TrimLine removes one trailing "\n" and then one trailing "\r".
func TrimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
