// Package render turns an option.Option into a single line of text.
//
// Rendering is pure: the only input outside the option is the terminal
// width, read on every call for fill-width bars.
package render

import (
	"github.com/pablasso/bardot/internal/term"
	"github.com/pablasso/bardot/option"
)

// Data holds the numbers derived from an option once per render.
type Data struct {
	// CharsBar is the number of cells available to the bar. Negative
	// means the label alone does not fit.
	CharsBar int
	// BlocksPerNum is CharsBar / Max, the cells per unit of progress.
	BlocksPerNum float64
	// PipsPerNum is CharsBar * Steps / Max, the glyph steps per unit of progress.
	PipsPerNum float64
}

// Renderer renders options. Columns reports the terminal width for fill
// strategies without an explicit total; nil means the width of stdout.
type Renderer struct {
	Columns func() int
}

// Default reads the terminal width from stdout.
var Default = Renderer{Columns: term.Columns}

// Render renders opt with Default. It satisfies option.Renderer.
func Render(opt option.Option) string {
	return Default.Render(opt)
}

// Derive computes the per-render numbers for opt.
// A zero Max yields zero ratios: no progress is possible.
func (r Renderer) Derive(opt option.Option) Data {
	d := Data{CharsBar: r.charsBar(opt)}
	if opt.Max > 0 {
		d.BlocksPerNum = float64(d.CharsBar) / float64(opt.Max)
		d.PipsPerNum = float64(d.CharsBar*opt.Symbol.Steps()) / float64(opt.Max)
	}
	return d
}

// Render returns the line for opt, or "" when the configured width
// cannot hold the label.
func (r Renderer) Render(opt option.Option) string {
	d := r.Derive(opt)
	if d.CharsBar < 0 {
		return ""
	}
	return Interpolate(opt.Template, opt.Cur, opt.Max, Bar(opt.Cur, opt.Max, d.CharsBar, opt.Symbol))
}

func (r Renderer) columns() int {
	if r.Columns == nil {
		return term.Columns()
	}
	return r.Columns()
}
