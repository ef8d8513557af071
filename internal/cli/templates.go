package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/render"
	"github.com/pablasso/bardot/template"
	"github.com/pablasso/bardot/width"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List named templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, opts)
		},
	}
}

func runTemplates(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	set, err := cfg.Symbol(cfg.Symbols)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTEMPLATE\tSAMPLE")
	for _, name := range template.Names() {
		tpl, _ := template.Lookup(name)
		sample := render.Render(option.Option{
			Cur:      sampleCur,
			Max:      sampleMax,
			Width:    width.Template(30),
			Template: tpl,
			Symbol:   set,
		})
		// Escapes confuse tabwriter's column widths.
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, ansi.Strip(tpl), ansi.Strip(sample))
	}
	return w.Flush()
}
