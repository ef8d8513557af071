// Package width defines the strategies that decide how many cells a bar occupies.
package width

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultChars is the cell count used by DefaultBar and DefaultTemplate.
const DefaultChars = 50

// Strategy is one of BarMode, TemplateMode or FillMode.
type Strategy interface {
	fmt.Stringer
	strategy()
}

// BarMode sizes the bar itself to exactly Chars cells.
type BarMode struct {
	Chars int
}

// TemplateMode sizes the whole rendered line to Chars cells.
// The bar gets whatever the label leaves over.
type TemplateMode struct {
	Chars int
}

// FillMode fills the available width minus Minus cells and the label.
// A zero Full means the terminal width at render time.
type FillMode struct {
	Minus int
	Full  int
}

func (BarMode) strategy()      {}
func (TemplateMode) strategy() {}
func (FillMode) strategy()     {}

func (m BarMode) String() string      { return "bar:" + strconv.Itoa(m.Chars) }
func (m TemplateMode) String() string { return "template:" + strconv.Itoa(m.Chars) }

func (m FillMode) String() string {
	switch {
	case m.Full != 0:
		return fmt.Sprintf("fill:%d:%d", m.Minus, m.Full)
	case m.Minus != 0:
		return "fill:" + strconv.Itoa(m.Minus)
	default:
		return "fill"
	}
}

// Bar returns a strategy giving the bar exactly chars cells.
func Bar(chars int) Strategy {
	return BarMode{Chars: chars}
}

// DefaultBar is Bar(DefaultChars).
func DefaultBar() Strategy {
	return Bar(DefaultChars)
}

// Template returns a strategy fitting the whole line into chars cells.
func Template(chars int) Strategy {
	return TemplateMode{Chars: chars}
}

// DefaultTemplate is Template(DefaultChars).
func DefaultTemplate() Strategy {
	return Template(DefaultChars)
}

// Fill returns a strategy filling the terminal width minus minus cells.
func Fill(minus int) Strategy {
	return FillMode{Minus: minus}
}

// FillTo is like Fill but against an explicit total width instead of the terminal.
func FillTo(minus, full int) Strategy {
	return FillMode{Minus: minus, Full: full}
}

// Parse reads the notation produced by String: "bar:N", "template:N",
// "fill", "fill:MINUS" or "fill:MINUS:FULL". A bare "bar" or "template"
// uses DefaultChars.
func Parse(value string) (Strategy, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(value)), ":")

	nums := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %q is not a number", value, p)
		}
		nums = append(nums, n)
	}

	switch parts[0] {
	case "bar":
		switch len(nums) {
		case 0:
			return DefaultBar(), nil
		case 1:
			return Bar(nums[0]), nil
		}
	case "template":
		switch len(nums) {
		case 0:
			return DefaultTemplate(), nil
		case 1:
			return Template(nums[0]), nil
		}
	case "fill":
		switch len(nums) {
		case 0:
			return Fill(0), nil
		case 1:
			return Fill(nums[0]), nil
		case 2:
			return FillTo(nums[0], nums[1]), nil
		}
	default:
		return nil, fmt.Errorf("invalid width %q (valid: bar[:N], template[:N], fill[:MINUS[:FULL]])", value)
	}
	return nil, fmt.Errorf("invalid width %q: too many values for %s", value, parts[0])
}
