package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// GetSize returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal behind f.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth(f *os.File) int {
	width, _ := GetSize(f)
	return width
}
