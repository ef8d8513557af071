package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pablasso/bardot/template"
)

// pctWidth is the padded width of |pct|.
const pctWidth = 4

// Interpolate substitutes the bar and the formatted numbers into tpl.
// |cur| is right-aligned to the width of total, and |pct| to four columns
// so the label keeps its width as progress changes.
func Interpolate(tpl string, cur, total int, bar string) string {
	m := strconv.Itoa(total)
	return replaceTokens(tpl,
		bar,
		fmt.Sprintf("%*d", len(m), cur),
		m,
		fmt.Sprintf("%*s", pctWidth, Percent(cur, total)),
	)
}

// Percent formats cur/total as a percentage rounded to one decimal,
// dropping a trailing ".0": full progress prints as 100, not 100.0, so the
// padded value never exceeds four columns. A zero total reads as 0.
func Percent(cur, total int) string {
	if total <= 0 {
		return "0"
	}
	pct := math.Round(1000*float64(cur)/float64(total)) / 10
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

func replaceTokens(tpl, bar, cur, maxStr, pct string) string {
	return strings.NewReplacer(
		template.TokenBar, bar,
		template.TokenCur, cur,
		template.TokenMax, maxStr,
		template.TokenPct, pct,
	).Replace(tpl)
}
