package tui

import "github.com/pablasso/bardot/internal/config"

// Options configures the preview at startup.
type Options struct {
	// Config supplies max, template, glyph set and any custom glyph sets.
	Config *config.Config
	// Cur is the starting progress.
	Cur int
}
