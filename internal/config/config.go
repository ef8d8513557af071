// Package config loads bardot CLI defaults using Viper and XDG base directories.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/symbol"
	"github.com/pablasso/bardot/template"
	"github.com/pablasso/bardot/width"
	"github.com/spf13/viper"
)

// Config holds the defaults used when a flag is not given.
type Config struct {
	Template      string                `mapstructure:"template"`
	Format        string                `mapstructure:"format"` // literal template, wins over Template
	Symbols       string                `mapstructure:"symbols"`
	Width         string                `mapstructure:"width"`
	Max           int                   `mapstructure:"max"`
	CustomSymbols map[string]symbol.Set `mapstructure:"custom_symbols"`
}

// LoadWithFile loads configFile if given, otherwise searches workDir and
// the user config directory for bardot.yaml.
func LoadWithFile(workDir, configFile string) (*Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
		return unmarshal(v)
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(workDir)
	v.AddConfigPath(Dir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return unmarshal(v)
}

// Load is LoadWithFile without an explicit file.
func Load(workDir string) (*Config, error) {
	return LoadWithFile(workDir, "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	// BARDOT_TEMPLATE, BARDOT_SYMBOLS, ... take precedence over the file.
	v.SetEnvPrefix("bardot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("template", DefaultTemplate)
	v.SetDefault("format", "")
	v.SetDefault("symbols", DefaultSymbols)
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("max", DefaultMax)
	v.SetDefault("custom_symbols", map[string]any{})
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	for name, s := range cfg.CustomSymbols {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("custom glyph set %q: %w", name, err)
		}
	}
	return cfg, nil
}

// Symbol resolves a glyph set name, preferring custom sets.
func (c *Config) Symbol(name string) (symbol.Set, error) {
	if s, ok := c.CustomSymbols[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s.Clone(), nil
	}
	return symbol.Lookup(name)
}

// SymbolNames lists built-in and custom glyph set names, sorted.
func (c *Config) SymbolNames() []string {
	names := symbol.Names()
	for name := range c.CustomSymbols {
		if _, err := symbol.Lookup(name); err != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// TemplateText returns Format if set, otherwise the named Template.
func (c *Config) TemplateText() (string, error) {
	if c.Format != "" {
		return c.Format, nil
	}
	return template.Lookup(c.Template)
}

// Option builds the option these defaults describe, at cur.
func (c *Config) Option(cur int) (option.Option, error) {
	tpl, err := c.TemplateText()
	if err != nil {
		return option.Option{}, err
	}
	set, err := c.Symbol(c.Symbols)
	if err != nil {
		return option.Option{}, err
	}
	w, err := width.Parse(c.Width)
	if err != nil {
		return option.Option{}, err
	}

	return option.NewBuilder(nil).
		Maximum(c.Max).
		Current(cur).
		Width(w).
		Template(tpl).
		Symbols(set).
		Opt(), nil
}

// Dir returns the XDG config directory for bardot.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bardot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bardot")
}
