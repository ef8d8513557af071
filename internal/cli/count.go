package cli

import (
	"bufio"
	"fmt"

	"github.com/pablasso/bardot/internal/display"
	"github.com/pablasso/bardot/internal/term"
	"github.com/pablasso/bardot/option"
	"github.com/pablasso/bardot/render"
	"github.com/spf13/cobra"
)

func newCountCmd(opts *rootOptions) *cobra.Command {
	flags := &barFlags{}
	var echo bool
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Advance a bar for every line read from stdin",
		Long: `Read stdin line by line and redraw a bar on stderr after each line.

Use --echo to print every line above the bar.`,
		Example: `  find . -name '*.go' | xargs -n1 gofmt -l | bardot count --max 120`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts, flags, echo)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&echo, "echo", false, "print each input line above the bar")
	return cmd
}

func runCount(cmd *cobra.Command, opts *rootOptions, flags *barFlags, echo bool) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	flags.apply(cmd, cfg)

	opt, err := cfg.Option(flags.cur)
	if err != nil {
		return err
	}

	// The bar goes to stderr, so fill widths follow stderr's terminal.
	r := render.Renderer{Columns: term.ColumnsFor(cmd.ErrOrStderr())}
	d := display.New(cmd.ErrOrStderr(), option.From(opt, r.Render))
	d.Start()
	defer d.Finish()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if echo {
			d.PrintAbove("%s", scanner.Text())
		}
		d.Add(1)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
