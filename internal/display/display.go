// Package display keeps a single bar line redrawn in place on a terminal.
package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pablasso/bardot/option"
)

// Display manages one in-place bar line.
type Display struct {
	mu       sync.Mutex
	writer   io.Writer
	bar      option.Builder
	now      func() time.Time
	start    time.Time
	active   bool
	lastLine string
}

// New creates a Display writing bar to w.
func New(w io.Writer, bar option.Builder) *Display {
	return &Display{
		writer: w,
		bar:    bar,
		now:    time.Now,
	}
}

// Start draws the initial line.
func (d *Display) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.active {
		return
	}
	d.active = true
	d.start = d.now()
	d.render()
}

// Set moves the bar to cur and redraws if the line changed.
func (d *Display) Set(cur int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bar = d.bar.Current(cur)
	d.render()
}

// Add advances the bar by n.
func (d *Display) Add(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bar = d.bar.Current(d.bar.Opt().Cur + n)
	d.render()
}

// Current returns the current progress.
func (d *Display) Current() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bar.Opt().Cur
}

// Finish leaves the last line on screen, followed by a summary line.
func (d *Display) Finish() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.active {
		return
	}
	d.active = false
	opt := d.bar.Opt()
	fmt.Fprintf(d.writer, "\n%d/%d in %s\n", opt.Cur, opt.Max, formatDuration(d.now().Sub(d.start)))
}

// PrintAbove prints a message above the bar line.
func (d *Display) PrintAbove(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLine()
	fmt.Fprintf(d.writer, format+"\n", args...)
	d.lastLine = ""
	d.render()
}

// render redraws the bar line. Callers hold d.mu.
func (d *Display) render() {
	if !d.active {
		return
	}
	line := d.bar.String()

	// Only update if changed (reduces flicker)
	if line == d.lastLine {
		return
	}
	d.lastLine = line

	// Move to start of line, clear it, write new content
	fmt.Fprintf(d.writer, "\r\033[K%s", line)
}

func (d *Display) clearLine() {
	fmt.Fprintf(d.writer, "\r\033[K")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
