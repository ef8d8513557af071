// Package bardot renders single-line text progress bars with sub-cell
// resolution.
//
//	fmt.Println(bardot.New().Maximum(32).Current(18).WidthBar(8))
//
// The builder returned by New is immutable; every setter returns a new
// value. Rendering reads nothing but the option and, for fill widths,
// the current terminal width.
package bardot

import (
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/render"
)

// New returns a builder with default options that renders with render.Render.
func New() option.Builder {
	return option.NewBuilder(render.Render)
}

// Render renders opt using the terminal width of stdout for fill bars.
func Render(opt option.Option) string {
	return render.Render(opt)
}
