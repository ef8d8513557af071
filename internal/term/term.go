// Package term reports the size of the terminal bars are drawn into.
package term

import (
	"io"
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
)

// FallbackColumns is used when neither the terminal nor $COLUMNS gives a width.
const FallbackColumns = 80

// Columns returns the current width of stdout. It is read on every call
// so a resized terminal is picked up immediately.
func Columns() int {
	return columns(os.Stdout.Fd(), os.Getenv)
}

// ColumnsFor returns a Columns func measuring the terminal behind w, for
// bars drawn somewhere other than stdout. Writers without a file
// descriptor use $COLUMNS or FallbackColumns.
func ColumnsFor(w io.Writer) func() int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return func() int { return envColumns(os.Getenv) }
	}
	return func() int { return columns(f.Fd(), os.Getenv) }
}

func columns(fd uintptr, getenv func(string) string) int {
	if xterm.IsTerminal(fd) {
		if w, _, err := xterm.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return envColumns(getenv)
}

func envColumns(getenv func(string) string) int {
	if n, err := strconv.Atoi(getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return FallbackColumns
}
