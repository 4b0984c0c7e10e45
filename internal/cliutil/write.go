// Package cliutil provides output helpers shared by the ccase commands.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Writef writes formatted output to w.
// A failed write is reported on stderr rather than returned.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
// Anything else, including pipes, files and in-memory buffers, is not.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Styler renders emphasis for w. Output to anything but a color terminal is
// left plain.
type Styler struct {
	out *termenv.Output
}

// NewStyler returns a Styler for w.
func NewStyler(w io.Writer) *Styler {
	return &Styler{out: termenv.NewOutput(w)}
}

// Bold returns s in bold.
func (s *Styler) Bold(text string) string {
	return s.out.String(text).Bold().String()
}
