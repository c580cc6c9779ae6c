package util

import (
	"io"

	"golang.org/x/term"
)

// Terminal reports whether a file descriptor is attached to a terminal
type Terminal interface {
	IsTerminal(fd int) bool
}

type realTerminal struct{}

func (realTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DefaultTerminal is backed by golang.org/x/term
var DefaultTerminal Terminal = realTerminal{}

type fdWriter interface {
	Fd() uintptr
}

// IsTerminal returns true when w is a file attached to a terminal. Writers without
// a file descriptor (buffers, pipes wrapped in other writers) are never terminals.
func IsTerminal(w io.Writer) bool {
	return isTerminal(DefaultTerminal, w)
}

func isTerminal(t Terminal, w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return t.IsTerminal(int(f.Fd()))
}
