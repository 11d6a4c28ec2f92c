package ui

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultTermWidth  = 80
	DefaultTermHeight = 24
)

// TerminalSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func TerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultTermWidth, DefaultTermHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// FitsTerminal reports whether a map of the given size plus status lines
// fits the current terminal.
func FitsTerminal(mapWidth, mapHeight, statusLines int) bool {
	w, h := TerminalSize()
	return mapWidth <= w && mapHeight+statusLines+1 <= h
}
