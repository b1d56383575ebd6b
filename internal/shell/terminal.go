package shell

import (
	"io"

	"golang.org/x/term"
)

// TerminalReader reads passwords from a terminal with echo disabled.
type TerminalReader struct {
	fd    int
	out   io.Writer
	state *term.State
}

// NewTerminalReader creates a TerminalReader for the terminal fd. The newline
// the user typed is not echoed, so one is written to out after each read.
// The terminal state at construction is kept for Restore.
func NewTerminalReader(fd int, out io.Writer) *TerminalReader {
	r := &TerminalReader{fd: fd, out: out}
	if state, err := term.GetState(fd); err == nil {
		r.state = state
	}
	return r
}

// Restore puts the terminal back into the state it had when the reader was
// created. A read abandoned on cancellation leaves echo disabled until then.
func (r *TerminalReader) Restore() error {
	if r.state == nil {
		return nil
	}
	return term.Restore(r.fd, r.state)
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// ReadSecret reads one line without echo.
func (r *TerminalReader) ReadSecret() (string, error) {
	b, err := term.ReadPassword(r.fd)
	if _, werr := io.WriteString(r.out, "\n"); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
