// Package tui is an interactive preview of every glyph set and template.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/bardot/internal/config"
	"github.com/pablasso/bardot/internal/tui/components"
	"github.com/pablasso/bardot/internal/tui/styles"
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/symbol"
	"github.com/pablasso/bardot/template"
)

// Minimum terminal dimensions for the preview.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 8
)

type namedTemplate struct {
	name string
	text string
}

// Model is the Bubble Tea model for the preview.
type Model struct {
	cur    int
	max    int
	step   int
	width  int
	height int

	symbolNames []string
	symbols     map[string]symbol.Set
	symbolIdx   int
	templates   []namedTemplate
	templateIdx int

	keys      keyMap
	help      help.Model
	statusBar components.StatusBar
}

// Run starts the preview.
func Run(opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{
			Template: config.DefaultTemplate,
			Symbols:  config.DefaultSymbols,
			Max:      config.DefaultMax,
		}
	}

	m := Model{
		symbols:   make(map[string]symbol.Set),
		keys:      defaultKeyMap(),
		help:      help.New(),
		statusBar: components.NewStatusBar(),
	}

	bar := option.NewBuilder(nil).Maximum(cfg.Max).Current(opts.Cur).Opt()
	m.cur, m.max = bar.Cur, bar.Max
	m.step = max(1, m.max/100)

	for _, name := range cfg.SymbolNames() {
		s, err := cfg.Symbol(name)
		if err != nil {
			return Model{}, err
		}
		m.symbolNames = append(m.symbolNames, name)
		m.symbols[name] = s
		if name == strings.ToLower(cfg.Symbols) {
			m.symbolIdx = len(m.symbolNames) - 1
		}
	}

	if cfg.Format != "" {
		m.templates = append(m.templates, namedTemplate{name: "custom", text: cfg.Format})
	}
	for _, name := range template.Names() {
		text, _ := template.Lookup(name)
		if cfg.Format == "" && name == cfg.Template {
			m.templateIdx = len(m.templates)
		}
		m.templates = append(m.templates, namedTemplate{name: name, text: text})
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Less):
			m.cur = max(0, m.cur-m.step)
		case key.Matches(msg, m.keys.More):
			m.cur = min(m.max, m.cur+m.step)
		case key.Matches(msg, m.keys.Empty):
			m.cur = 0
		case key.Matches(msg, m.keys.Full):
			m.cur = m.max
		case key.Matches(msg, m.keys.Symbols):
			m.symbolIdx = (m.symbolIdx + 1) % len(m.symbolNames)
		case key.Matches(msg, m.keys.Template):
			m.templateIdx = (m.templateIdx + 1) % len(m.templates)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	nameWidth := 0
	for _, name := range m.symbolNames {
		nameWidth = max(nameWidth, lipgloss.Width(name))
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("bardot preview"))
	b.WriteString("\n")

	tpl := m.templates[m.templateIdx]
	for i, name := range m.symbolNames {
		label := fmt.Sprintf("  %-*s  ", nameWidth, name)
		style := styles.SubtleStyle
		if i == m.symbolIdx {
			label = fmt.Sprintf("› %-*s  ", nameWidth, name)
			style = styles.SelectedStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.renderBar(m.symbols[name], tpl.text, lipgloss.Width(label)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width, []string{
		"template " + tpl.name,
		m.symbolNames[m.symbolIdx],
		fmt.Sprintf("%d/%d", m.cur, m.max),
	}))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderBar fills what is left of the row after the label.
func (m Model) renderBar(s symbol.Set, tpl string, labelWidth int) string {
	p := components.NewProgress(m.cur, m.max, m.width, tpl, s)
	p.Indent = labelWidth + 1
	if line := p.View(); line != "" {
		return line
	}
	return styles.ErrorStyle.Render("(no room)")
}

func (m Model) renderTerminalTooSmall() string {
	return fmt.Sprintf("%s\n\nMinimum: %dx%d\nCurrent: %dx%d\n",
		styles.ErrorStyle.Render("Terminal too small"),
		MinTerminalWidth, MinTerminalHeight,
		m.width, m.height)
}
