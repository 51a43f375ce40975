package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chandrakit/chandrakit/pkg/config"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print the composed run configuration",
		Long: `Print the fully composed run configuration as YAML: defaults applied,
derivations run, hidden fields projected away. With no path the built-in
defaults are shown.`,
		Example: `  # Show the defaults
  chandrakit show

  # Show a document after composition
  chandrakit show run.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.ChandraConfig
				err error
			)
			if len(args) > 0 {
				cfg, err = config.Read(args[0])
				if err != nil {
					return err
				}
				metrics.DocumentRead()
			} else {
				cfg = config.Default()
			}

			out, err := cfg.ToYAML()
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	return cmd
}
