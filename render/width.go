package render

import (
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/width"
)

// charsBar resolves the width strategy into the number of bar cells.
// The result may be negative.
func (r Renderer) charsBar(opt option.Option) int {
	switch w := opt.Width.(type) {
	case width.BarMode:
		return w.Chars
	case width.TemplateMode:
		return w.Chars - LabelSize(opt.Template, opt.Max)
	case width.FillMode:
		full := w.Full
		if full == 0 {
			full = r.columns()
		}
		return full - w.Minus - LabelSize(opt.Template, opt.Max)
	default:
		return 0
	}
}
