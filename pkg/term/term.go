package term

import (
	"os"
	"strconv"
	"strings"

	xterm "golang.org/x/term"
)

// DefaultWidth is used when the width cannot be determined.
const DefaultWidth = 80

// Width returns the current width of the terminal attached to stdout.
// The COLUMNS environment variable wins when it holds a positive number.
// Nothing is cached, so a resized terminal is picked up on the next call.
func Width() int {
	return widthOf(os.Stdout)
}

func widthOf(f *os.File) int {
	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		return cols
	}
	if f == nil {
		return DefaultWidth
	}
	width, _, err := xterm.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Fixed returns a width query that always reports width. Useful for tests and
// for rendering into files.
func Fixed(width int) func() int {
	return func() int { return width }
}
