package option

import (
	"github.com/pablasso/bardot/symbol"
	"github.com/pablasso/bardot/template"
	"github.com/pablasso/bardot/width"
)

// Builder is a chainable, immutable bar configuration.
// Every method returns a new Builder and leaves the receiver unchanged.
type Builder struct {
	opt      Option
	renderer Renderer
}

// NewBuilder starts from Default with the given renderer. A nil renderer
// renders nothing.
func NewBuilder(r Renderer) Builder {
	if r == nil {
		r = Nop
	}
	return Builder{opt: Default(), renderer: r}
}

// From starts a Builder from an existing option, clamping Cur into [0, Max].
func From(opt Option, r Renderer) Builder {
	b := NewBuilder(r)
	b.opt = opt
	b.opt.Symbol = opt.Symbol.Clone()
	return b.Maximum(opt.Max)
}

func (b Builder) with(fn func(*Option)) Builder {
	next := b
	next.opt.Symbol = b.opt.Symbol.Clone()
	fn(&next.opt)
	return next
}

// Current sets the progress, clamped into [0, max].
func (b Builder) Current(cur int) Builder {
	return b.with(func(o *Option) {
		o.Cur = clamp(cur, 0, o.Max)
	})
}

// Maximum sets the maximum. A negative maximum becomes 0 and the
// current value is pulled down if it no longer fits.
func (b Builder) Maximum(maxValue int) Builder {
	return b.with(func(o *Option) {
		if maxValue < 0 {
			maxValue = 0
		}
		o.Max = maxValue
		o.Cur = clamp(o.Cur, 0, maxValue)
	})
}

// WidthFill fills the terminal width minus minus cells.
func (b Builder) WidthFill(minus int) Builder {
	return b.withWidth(width.Fill(minus))
}

// WidthFillTo fills full cells minus minus cells.
func (b Builder) WidthFillTo(minus, full int) Builder {
	return b.withWidth(width.FillTo(minus, full))
}

// WidthBar gives the bar exactly chars cells.
func (b Builder) WidthBar(chars int) Builder {
	return b.withWidth(width.Bar(chars))
}

// WidthTemplate fits the whole line into chars cells.
func (b Builder) WidthTemplate(chars int) Builder {
	return b.withWidth(width.Template(chars))
}

// Width sets any width strategy.
func (b Builder) Width(s width.Strategy) Builder {
	return b.withWidth(s)
}

func (b Builder) withWidth(s width.Strategy) Builder {
	return b.with(func(o *Option) { o.Width = s })
}

func (b Builder) ShowBar() Builder          { return b.Template(template.Bar) }
func (b Builder) ShowBarCur() Builder       { return b.Template(template.BarCur) }
func (b Builder) ShowBarCurMax() Builder    { return b.Template(template.BarCurMax) }
func (b Builder) ShowBarPct() Builder       { return b.Template(template.BarPct) }
func (b Builder) ShowBarCurMaxPct() Builder { return b.Template(template.BarCurMaxPct) }

// Template sets a custom template.
func (b Builder) Template(tpl string) Builder {
	return b.with(func(o *Option) { o.Template = tpl })
}

// Symbols sets the glyph set.
func (b Builder) Symbols(s symbol.Set) Builder {
	return b.with(func(o *Option) { o.Symbol = s.Clone() })
}

// WithRenderer swaps the renderer used by String.
func (b Builder) WithRenderer(r Renderer) Builder {
	if r == nil {
		r = Nop
	}
	next := b
	next.renderer = r
	return next
}

// Opt returns a copy of the configured option.
func (b Builder) Opt() Option {
	o := b.opt
	o.Symbol = b.opt.Symbol.Clone()
	return o
}

// String renders the configured option.
func (b Builder) String() string {
	if b.renderer == nil {
		return ""
	}
	return b.renderer(b.Opt())
}
