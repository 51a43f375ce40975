package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chandrakit/chandrakit/pkg/config"
)

func newInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default run configuration",
		Long: `Write a fully populated default run configuration document.

The document contains every visible field with its default value and can
be edited down to the fields a run actually overrides.`,
		Example: `  # Write the default document
  chandrakit init run.yaml

  # Replace an existing document
  chandrakit init --overwrite run.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg := config.Default()
			if err := cfg.Write(path, overwrite); err != nil {
				var exists *config.FileExistsError
				if errors.As(err, &exists) {
					return fmt.Errorf("%s (use --overwrite to replace it)", err)
				}
				return err
			}
			metrics.DocumentWritten()

			log.Info().Str("path", path).Msg("wrote default configuration")
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing file")

	return cmd
}
