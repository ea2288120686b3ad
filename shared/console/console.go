// Package console inspects the terminal the process writes to.
package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal returns the file behind w when it is an interactive terminal.
func Terminal(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}

	return f, true
}
