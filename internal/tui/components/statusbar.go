package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/bardot/internal/tui/styles"
)

// StatusBar renders the line summarizing the preview state.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render joins items with " │ " and cuts the result to width cells.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 || width <= 0 {
		return ""
	}

	content := ansi.Truncate(strings.Join(items, " │ "), width, "…")

	return styles.StatusBarStyle.Render(content)
}
