// Package template provides the tokens and ready-made templates for a bar line.
package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tokens recognized in a template. Anything else passes through untouched.
const (
	TokenBar = "|bar|"
	TokenCur = "|cur|"
	TokenMax = "|max|"
	TokenPct = "|pct|"
)

// Styles are rendered once at init, so the color profile is the one
// lipgloss detects for stdout at that point. Output without color support
// gets the plain tokens.
var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	slashStyle = lipgloss.NewStyle().Faint(true)

	greenBar = barStyle.Render(TokenBar)
	dimSlash = slashStyle.Render("/")
)

var (
	Bar          = greenBar
	BarCur       = greenBar + " " + TokenCur
	BarCurMax    = greenBar + " " + TokenCur + dimSlash + TokenMax
	BarPct       = greenBar + " " + TokenPct + "%"
	BarCurMaxPct = greenBar + " " + TokenCur + dimSlash + TokenMax + " " + TokenPct + "%"
)

var named = map[string]string{
	"bar":             Bar,
	"bar-cur":         BarCur,
	"bar-cur-max":     BarCurMax,
	"bar-pct":         BarPct,
	"bar-cur-max-pct": BarCurMaxPct,
}

// Lookup returns the named template.
func Lookup(name string) (string, error) {
	tpl, ok := named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown template %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return tpl, nil
}

// Names lists the built-in templates in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
