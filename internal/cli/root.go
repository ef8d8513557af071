package cli

import (
	"fmt"
	"os"

	"github.com/pablasso/bardot/internal/config"
	"github.com/pablasso/bardot/internal/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

// load reads bardot.yaml from --config, the working directory or the
// user config directory.
func (o *rootOptions) load() (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.LoadWithFile(workDir, o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// NewRootCmd creates the root command. Without a subcommand it opens the preview.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	flags := &barFlags{}

	rootCmd := &cobra.Command{
		Use:   "bardot",
		Short: "Text progress bars with sub-character resolution",
		Long: `bardot renders single-line progress bars from a current and maximum value,
a width strategy, a glyph set and a template.

Run without a subcommand to open an interactive preview.`,
		Version:      version.String(),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./bardot.yaml or ~/.config/bardot/bardot.yaml)")
	flags.register(rootCmd)

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newSymbolsCmd(opts))
	rootCmd.AddCommand(newTemplatesCmd(opts))
	rootCmd.AddCommand(newCountCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
