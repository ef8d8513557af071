// Package symbol holds the glyph sets a bar is drawn with.
package symbol

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Set is the full/empty/fractions triple used to draw a bar.
// Fractions run from almost empty to almost full and may be empty.
type Set struct {
	Full      string   `yaml:"full" mapstructure:"full"`
	Empty     string   `yaml:"empty" mapstructure:"empty"`
	Fractions []string `yaml:"fractions,omitempty" mapstructure:"fractions"`
}

// Clone returns a copy that shares no memory with s.
func (s Set) Clone() Set {
	c := s
	if s.Fractions != nil {
		c.Fractions = append([]string(nil), s.Fractions...)
	}
	return c
}

// Steps is the number of distinct glyphs a single cell can show
// while partially filled: the empty glyph plus every fraction.
func (s Set) Steps() int {
	return len(s.Fractions) + 1
}

// Validate reports whether s can draw a bar.
func (s Set) Validate() error {
	if s.Full == "" {
		return errors.New("glyph set has no full glyph")
	}
	if s.Empty == "" {
		return errors.New("glyph set has no empty glyph")
	}
	for i, f := range s.Fractions {
		if f == "" {
			return fmt.Errorf("glyph set fraction %d is empty", i)
		}
	}
	return nil
}

var (
	Dot8 = Set{
		Full:      "⣿",
		Empty:     " ",
		Fractions: []string{"⡀", "⡄", "⡆", "⡇", "⣇", "⣧", "⣷"},
	}
	Dot6 = Set{
		Full:      "⠿",
		Empty:     " ",
		Fractions: []string{"⠄", "⠆", "⠇", "⠧", "⠷"},
	}
	Rod5 = Set{
		Full:      "𝍤",
		Empty:     " ",
		Fractions: []string{"𝍠", "𝍡", "𝍢", "𝍣"},
	}
	Pip        = Set{Full: "●", Empty: "○"}
	BlockSpace = Set{Full: "█", Empty: " "}
	BlockDot   = Set{Full: "█", Empty: "⠿"}
	Tick       = Set{Full: "✓", Empty: " "}
	StarSpace  = Set{Full: "*", Empty: " "}
	HashDash   = Set{
		Full:      "#",
		Empty:     " ",
		Fractions: []string{"-", "+", "⧺"},
	}
	// ASCII is the fallback for terminals without Unicode fonts.
	ASCII = Set{Full: "#", Empty: "-"}
)

var named = map[string]Set{
	"dot8":       Dot8,
	"dot6":       Dot6,
	"rod5":       Rod5,
	"pip":        Pip,
	"blockspace": BlockSpace,
	"blockdot":   BlockDot,
	"tick":       Tick,
	"starspace":  StarSpace,
	"hashdash":   HashDash,
	"ascii":      ASCII,
}

// Lookup returns a copy of the named glyph set.
func Lookup(name string) (Set, error) {
	s, ok := named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Set{}, fmt.Errorf("unknown glyph set %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return s.Clone(), nil
}

// Names lists the built-in glyph sets in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
