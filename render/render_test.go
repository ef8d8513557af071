package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/symbol"
	"github.com/pablasso/bardot/width"
)

var fixed = Renderer{Columns: func() int { return 100 }}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		opt  option.Option
		want string
	}{
		{
			"full bar of 4",
			option.Option{Cur: 32, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"⣿⣿⣿⣿ 32/32",
		},
		{
			"full bar of 8",
			option.Option{Cur: 32, Max: 32, Width: width.Bar(8), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"⣿⣿⣿⣿⣿⣿⣿⣿ 32/32",
		},
		{
			"fraction",
			option.Option{Cur: 18, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"⣿⣿⡄  18/32",
		},
		{
			"half on a boundary",
			option.Option{Cur: 16, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"⣿⣿   16/32",
		},
		{
			"quarter",
			option.Option{Cur: 8, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"⣿     8/32",
		},
		{
			"empty",
			option.Option{Cur: 0, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"      0/32",
		},
		{
			"full with pct",
			option.Option{Cur: 32, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max| |pct|%"},
			"⣿⣿⣿⣿ 32/32  100%",
		},
		{
			"fraction with pct",
			option.Option{Cur: 18, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max| |pct|%"},
			"⣿⣿⡄  18/32 56.3%",
		},
		{
			"repeated tokens",
			option.Option{Cur: 18, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max| |pct|% //// |bar| |cur|/|max| |pct|%"},
			"⣿⣿⡄  18/32 56.3% //// ⣿⣿⡄  18/32 56.3%",
		},
		{
			"tokens in any order",
			option.Option{Cur: 18, Max: 32, Width: width.Bar(4), Symbol: symbol.Dot8, Template: "look |pct|% at |cur|/|max| this |bar|!"},
			"look 56.3% at 18/32 this ⣿⣿⡄ !",
		},
		{
			"template width",
			option.Option{Cur: 18, Max: 32, Width: width.Template(10), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"⣿⣿⡄  18/32",
		},
		{
			"template width with pct",
			option.Option{Cur: 18, Max: 32, Width: width.Template(20), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max| |pct|%"},
			"⣿⣿⣿⣿⡇    18/32 56.3%",
		},
		{
			"fill to explicit width",
			option.Option{Cur: 18, Max: 32, Width: width.FillTo(10, 30), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max| |pct|%"},
			"⣿⣿⣿⣿⡇    18/32 56.3%",
		},
		{
			"no tokens",
			option.Option{Cur: 10, Max: 100, Width: width.FillTo(0, 30), Symbol: symbol.Dot8, Template: "%bar"},
			"%bar",
		},
		{
			"fill terminal width",
			option.Option{Cur: 50, Max: 100, Width: width.Fill(90), Symbol: symbol.ASCII, Template: "|bar| |pct|%"},
			"##--   50%",
		},
		{
			"template too narrow",
			option.Option{Cur: 18, Max: 32, Width: width.Template(5), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"",
		},
		{
			"fill too narrow",
			option.Option{Cur: 18, Max: 32, Width: width.FillTo(0, 5), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			"",
		},
		{
			"label exactly fills template",
			option.Option{Cur: 18, Max: 32, Width: width.Template(6), Symbol: symbol.Dot8, Template: "|bar| |cur|/|max|"},
			" 18/32",
		},
		{
			"no fractions",
			option.Option{Cur: 18, Max: 32, Width: width.Bar(4), Symbol: symbol.Set{Full: "*", Empty: "-"}, Template: "|bar| |cur|/|max|"},
			"**-- 18/32",
		},
		{
			"single fraction",
			option.Option{Cur: 20, Max: 32, Width: width.Bar(4), Symbol: symbol.Set{Full: "#", Empty: " ", Fractions: []string{"+"}}, Template: "|bar| |cur|/|max|"},
			"##+  20/32",
		},
		{
			"multi-character glyphs",
			option.Option{Cur: 20, Max: 32, Width: width.Bar(4), Symbol: symbol.Set{Full: "[]", Empty: "  ", Fractions: []string{"..", ".+", "+."}}, Template: "|bar| |cur|/|max|"},
			"[][].+   20/32",
		},
		{
			"fraction rounds down to empty",
			option.Option{Cur: 19, Max: 32, Width: width.Bar(4), Symbol: symbol.Set{Full: "x", Empty: " ", Fractions: []string{"o"}}, Template: "|bar| |cur|/|max|"},
			"xx   19/32",
		},
		{
			"token padding",
			option.Option{Cur: 7, Max: 100, Width: width.Bar(4), Symbol: symbol.ASCII, Template: "|cur|/|max|"},
			"  7/100",
		},
		{
			"zero max",
			option.Option{Cur: 0, Max: 0, Width: width.Bar(4), Symbol: symbol.ASCII, Template: "|bar| |cur|/|max| |pct|%"},
			"---- 0/0    0%",
		},
		{
			"nil width",
			option.Option{Cur: 5, Max: 10, Symbol: symbol.ASCII, Template: "[|bar|] |cur|"},
			"[]  5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fixed.Render(tt.opt); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_SpecExamples(t *testing.T) {
	tests := []struct {
		cur, total int
		set        symbol.Set
		want       string
	}{
		{2, 4, symbol.Set{Full: "#", Empty: "-"}, "##--"},
		{1, 4, symbol.Set{Full: "#", Empty: "-", Fractions: []string{"+"}}, "#---"},
		{1, 8, symbol.Set{Full: "#", Empty: "-", Fractions: []string{"+"}}, "+---"},
	}

	for _, tt := range tests {
		opt := option.Option{Cur: tt.cur, Max: tt.total, Width: width.Bar(4), Symbol: tt.set, Template: "|bar|"}
		if got := fixed.Render(opt); got != tt.want {
			t.Errorf("Render(%d/%d) = %q, want %q", tt.cur, tt.total, got, tt.want)
		}
	}
}

func TestRender_StyledTemplate(t *testing.T) {
	opt := option.Option{
		Cur:      18,
		Max:      32,
		Width:    width.Template(10),
		Symbol:   symbol.Dot8,
		Template: "\x1b[32m|bar|\x1b[0m |cur|\x1b[2m/\x1b[0m|max|",
	}

	got := fixed.Render(opt)
	if !strings.Contains(got, "\x1b[32m") {
		t.Errorf("escape sequences were not passed through: %q", got)
	}
	if plain := ansi.Strip(got); plain != "⣿⣿⡄  18/32" {
		t.Errorf("Render() stripped = %q, want %q", plain, "⣿⣿⡄  18/32")
	}
}

func TestRender_LengthStable(t *testing.T) {
	shapes := []struct {
		name  string
		width width.Strategy
		tpl   string
		total int
		set   symbol.Set
	}{
		{"bar", width.Bar(10), "|bar| |cur|/|max| |pct|%", 37, symbol.Dot8},
		{"template", width.Template(30), "[|bar|] |cur|/|max| |pct|%", 250, symbol.HashDash},
		{"fill", width.Fill(20), "|pct|% |bar| |cur|", 7, symbol.Pip},
		{"fill to", width.FillTo(3, 41), "|bar||cur|", 1000, symbol.ASCII},
	}

	for _, s := range shapes {
		t.Run(s.name, func(t *testing.T) {
			want := -1
			for cur := 0; cur <= s.total; cur++ {
				opt := option.Option{Cur: cur, Max: s.total, Width: s.width, Template: s.tpl, Symbol: s.set}
				got := ansi.StringWidth(fixed.Render(opt))
				if want < 0 {
					want = got
				}
				if got != want {
					t.Fatalf("cur=%d: width %d, want %d", cur, got, want)
				}
			}
		})
	}
}

func TestRender_BoundarySaturation(t *testing.T) {
	for _, total := range []int{1, 3, 7, 32, 49, 100} {
		for _, cells := range []int{1, 4, 10, 33} {
			empty := option.Option{Cur: 0, Max: total, Width: width.Bar(cells), Template: "|bar|", Symbol: symbol.Dot8}
			if got, want := fixed.Render(empty), strings.Repeat(" ", cells); got != want {
				t.Errorf("0/%d over %d cells = %q, want %q", total, cells, got, want)
			}

			full := empty
			full.Cur = total
			if got, want := fixed.Render(full), strings.Repeat("⣿", cells); got != want {
				t.Errorf("%d/%d over %d cells = %q, want %q", total, total, cells, got, want)
			}
		}
	}
}

func TestRender_Monotonic(t *testing.T) {
	const total = 97
	prev := 0
	for cur := 0; cur <= total; cur++ {
		opt := option.Option{Cur: cur, Max: total, Width: width.Bar(13), Template: "|bar|", Symbol: symbol.Dot6}
		n := strings.Count(fixed.Render(opt), symbol.Dot6.Full)
		if n < prev {
			t.Fatalf("cur=%d: %d full glyphs, fewer than %d", cur, n, prev)
		}
		prev = n
	}
}

func TestRender_Idempotent(t *testing.T) {
	opt := option.Option{Cur: 18, Max: 32, Width: width.Fill(5), Template: "|bar| |cur|/|max| |pct|%", Symbol: symbol.Rod5}
	first := fixed.Render(opt)
	if second := fixed.Render(opt); first != second {
		t.Errorf("second render %q differs from first %q", second, first)
	}
}

func TestRender_ReadsColumnsEveryCall(t *testing.T) {
	cols := 20
	r := Renderer{Columns: func() int { return cols }}
	opt := option.Option{Cur: 0, Max: 9, Width: width.Fill(0), Template: "|bar||cur|", Symbol: symbol.ASCII}

	if got := r.Render(opt); got != strings.Repeat("-", 19)+"0" {
		t.Errorf("at 20 columns Render() = %q", got)
	}
	cols = 10
	if got := r.Render(opt); got != strings.Repeat("-", 9)+"0" {
		t.Errorf("at 10 columns Render() = %q", got)
	}
}

func TestDerive(t *testing.T) {
	opt := option.Option{Cur: 1, Max: 8, Width: width.Bar(4), Template: "|bar|", Symbol: symbol.Set{Full: "#", Empty: "-", Fractions: []string{"+"}}}
	got := fixed.Derive(opt)
	want := Data{CharsBar: 4, BlocksPerNum: 0.5, PipsPerNum: 1}
	if got != want {
		t.Errorf("Derive() = %+v, want %+v", got, want)
	}

	opt.Max = 0
	if got := fixed.Derive(opt); got != (Data{CharsBar: 4}) {
		t.Errorf("Derive() with zero max = %+v, want zero ratios", got)
	}
}

func TestBuilderIntegration(t *testing.T) {
	got := option.NewBuilder(fixed.Render).
		Maximum(4).
		Current(2).
		WidthBar(4).
		Template("|bar|").
		Symbols(symbol.Set{Full: "#", Empty: "-"}).
		String()
	if got != "##--" {
		t.Errorf("String() = %q, want %q", got, "##--")
	}
}
