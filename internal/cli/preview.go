package cli

import (
	"github.com/pablasso/bardot/internal/tui"
	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	flags := &barFlags{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview glyph sets and templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runPreview(cmd *cobra.Command, opts *rootOptions, flags *barFlags) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	flags.apply(cmd, cfg)

	return tui.Run(tui.Options{Config: cfg, Cur: flags.cur})
}
