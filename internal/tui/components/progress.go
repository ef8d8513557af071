package components

import (
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/render"
	"github.com/pablasso/bardot/symbol"
)

// Progress renders one bardot line that fills a row of the preview.
type Progress struct {
	Current  int
	Total    int
	Width    int // total width of the row
	Indent   int // cells already used on the row
	Template string
	Symbols  symbol.Set
}

// NewProgress creates a new Progress instance.
func NewProgress(current, total, width int, tpl string, s symbol.Set) Progress {
	return Progress{
		Current:  current,
		Total:    total,
		Width:    width,
		Template: tpl,
		Symbols:  s,
	}
}

// Option is the bar option the row renders. The row width is explicit so
// the preview never reads the terminal size itself.
func (p Progress) Option() option.Option {
	return option.NewBuilder(nil).
		Maximum(p.Total).
		Current(p.Current).
		WidthFillTo(p.Indent, p.Width).
		Template(p.Template).
		Symbols(p.Symbols).
		Opt()
}

// View returns the rendered line, or "" when the row cannot hold the label.
func (p Progress) View() string {
	if p.Width <= 0 {
		return ""
	}
	return render.Render(p.Option())
}
