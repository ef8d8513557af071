package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/render"
	"github.com/pablasso/bardot/symbol"
	"github.com/pablasso/bardot/width"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// sampleCur/sampleMax land inside a cell so fraction glyphs show.
const (
	sampleCur = 63
	sampleMax = 100
)

func newSymbolsCmd(opts *rootOptions) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List glyph sets",
		Long: `List the built-in and custom glyph sets with a sample bar.

With --yaml the sets are printed in the custom_symbols format of bardot.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(cmd, opts, asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print glyph sets as YAML")
	return cmd
}

func runSymbols(cmd *cobra.Command, opts *rootOptions, asYAML bool) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	sets := make(map[string]symbol.Set)
	for _, name := range cfg.SymbolNames() {
		s, err := cfg.Symbol(name)
		if err != nil {
			return err
		}
		sets[name] = s
	}

	if asYAML {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"custom_symbols": sets}); err != nil {
			return fmt.Errorf("failed to encode glyph sets: %w", err)
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTEPS\tSAMPLE")
	for _, name := range cfg.SymbolNames() {
		s := sets[name]
		sample := render.Render(option.Option{
			Cur:      sampleCur,
			Max:      sampleMax,
			Width:    width.Bar(12),
			Template: "[|bar|]",
			Symbol:   s,
		})
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, s.Steps(), sample)
	}
	return w.Flush()
}
