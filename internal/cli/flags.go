package cli

import (
	"github.com/pablasso/bardot/internal/config"
	"github.com/spf13/cobra"
)

// barFlags override config values when set on the command line.
type barFlags struct {
	cur      int
	max      int
	width    string
	template string
	format   string
	symbols  string
}

func (f *barFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.cur, "cur", 0, "current progress")
	fs.IntVar(&f.max, "max", config.DefaultMax, "maximum progress")
	fs.StringVarP(&f.width, "width", "w", config.DefaultWidth, "width: bar[:N], template[:N], fill[:MINUS[:FULL]]")
	fs.StringVarP(&f.template, "template", "t", config.DefaultTemplate, "named template")
	fs.StringVarP(&f.format, "format", "f", "", "literal template using |bar| |cur| |max| |pct|")
	fs.StringVarP(&f.symbols, "symbols", "s", config.DefaultSymbols, "glyph set name")
}

// apply copies every flag given on the command line into cfg.
func (f *barFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("max") {
		cfg.Max = f.max
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("template") {
		cfg.Template = f.template
		cfg.Format = ""
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("symbols") {
		cfg.Symbols = f.symbols
	}
}
