package cli

import (
	"fmt"

	"github.com/pablasso/bardot/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	flags := &barFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one bar line",
		Long: `Render a single bar line and print it.

Prints an empty line when the configured width cannot hold the label.`,
		Example: `  bardot render --cur 18 --max 32 --width bar:8
  bardot render --cur 7 --format '|bar| |cur| of |max|' --symbols ascii`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runRender(cmd *cobra.Command, opts *rootOptions, flags *barFlags) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	flags.apply(cmd, cfg)

	opt, err := cfg.Option(flags.cur)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Render(opt))
	return nil
}
