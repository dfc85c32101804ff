// Package terminal answers questions about the controlling terminal.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// DefaultWidth is used when the width cannot be detected.
const DefaultWidth = 80

// Width returns the terminal width in columns. COLUMNS wins over the tty size.
func Width() int {
	if width, ok := columns(os.Getenv("COLUMNS")); ok {
		return width
	}

	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if width := ttyWidth(f); width > 0 {
			return width
		}
	}

	return DefaultWidth
}

func columns(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	width, err := strconv.Atoi(value)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func ttyWidth(f *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}

// IsInteractive reports whether f is a character device.
func IsInteractive(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
