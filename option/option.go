// Package option holds the immutable configuration a bar is rendered from
// and the chainable builder that produces it.
package option

import (
	"github.com/pablasso/bardot/symbol"
	"github.com/pablasso/bardot/template"
	"github.com/pablasso/bardot/width"
)

// DefaultMax is the maximum used when none is configured.
const DefaultMax = 100

// Option is everything needed to render one bar line.
// Cur <= Max is kept by the Builder, not by renderers.
type Option struct {
	Cur      int
	Max      int
	Width    width.Strategy
	Template string
	Symbol   symbol.Set
}

// Renderer turns an Option into the text of a bar line.
type Renderer func(Option) string

// Default returns the option every Builder starts from.
func Default() Option {
	return Option{
		Cur:      0,
		Max:      DefaultMax,
		Width:    width.Fill(0),
		Template: template.BarCurMax,
		Symbol:   symbol.Dot8.Clone(),
	}
}

// Nop is a Renderer that renders nothing.
func Nop(Option) string { return "" }

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
