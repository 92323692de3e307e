// Package termwidth answers the terminal-width provider contract (§6):
// an optional integer width, and whether stdout is a tty at all (the
// theme engine's Automatic-colour input).
package termwidth

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// IsTTY reports whether fd is attached to a terminal.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Query returns stdout's terminal width, or false if stdout isn't a tty
// or the ioctl fails.
func Query() (int, bool) {
	fd := os.Stdout.Fd()
	if !IsTTY(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
