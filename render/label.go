package render

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"
)

// worstPct is wider than any percentage the interpolator prints once padded.
const worstPct = "99.9"

// LabelSize is the widest the non-bar part of tpl can get when counting up to total,
// in terminal cells, ignoring escape sequences. Reserving this much keeps
// the bar from changing width as the numbers grow.
func LabelSize(tpl string, total int) int {
	m := strconv.Itoa(total)
	return ansi.StringWidth(replaceTokens(tpl, "", m, m, worstPct))
}
