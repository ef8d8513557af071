package render

import (
	"math/bits"
	"strings"

	"github.com/pablasso/bardot/symbol"
)

// Bar draws exactly cells glyphs showing cur out of total.
//
// Whole cells use s.Full and s.Empty. When cur lands inside a cell, that
// cell shows one of [s.Empty, s.Fractions...] according to how far into
// the cell the progress reaches. Products are taken in 128 bits so cell
// boundaries are detected exactly for any int total.
func Bar(cur, total, cells int, s symbol.Set) string {
	if cells <= 0 {
		return ""
	}
	if total <= 0 {
		return strings.Repeat(s.Empty, cells)
	}
	cur = min(max(cur, 0), total)

	full, rem := mulDiv(uint64(cur), uint64(cells), uint64(total))
	empty, _ := mulDiv(uint64(total-cur), uint64(cells), uint64(total))

	var b strings.Builder
	b.Grow(int(full)*len(s.Full) + int(empty)*len(s.Empty) + 8)
	b.WriteString(strings.Repeat(s.Full, int(full)))
	if rem != 0 {
		b.WriteString(partial(s, rem, uint64(total)))
	}
	b.WriteString(strings.Repeat(s.Empty, int(empty)))
	return b.String()
}

// partial picks the glyph for the cell progress ends in, rem/total of the
// way through it.
func partial(s symbol.Set, rem, total uint64) string {
	i, _ := mulDiv(rem, uint64(s.Steps()), total)
	if i == 0 {
		return s.Empty
	}
	return s.Fractions[i-1]
}

// mulDiv returns a*b/c and its remainder. a must not exceed c, which keeps
// the quotient within 64 bits.
func mulDiv(a, b, c uint64) (q, r uint64) {
	hi, lo := bits.Mul64(a, b)
	return bits.Div64(hi, lo, c)
}
