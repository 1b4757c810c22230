package cli

import (
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// consoleWriter serializes writes and rewrites newlines to CRLF when the
// destination is a terminal.
type consoleWriter struct {
	mu  sync.Mutex
	out io.Writer
	tty bool
}

func newConsoleWriter(out io.Writer) *consoleWriter {
	if out == nil {
		out = io.Discard
	}
	return &consoleWriter{out: out, tty: isTerminal(out)}
}

func (w *consoleWriter) WriteString(s string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s == "" {
		return nil
	}
	if w.tty {
		s = normalizeConsoleNewlines(s)
	}
	_, err := io.WriteString(w.out, s)
	return err
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func normalizeConsoleNewlines(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
