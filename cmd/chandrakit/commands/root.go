package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/chandrakit/chandrakit/pkg/telemetry"
)

var (
	// Global flags
	verbose bool

	// metrics collects operation counters for the lifetime of one CLI
	// invocation.
	metrics *telemetry.Metrics
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chandrakit",
		Short: "Chandrakit - Chandra analysis run configuration",
		Long: `Chandrakit composes and validates the configuration of a multi-stage
Chandra imaging analysis: observation reprocessing, ROI extraction,
PSF simulation, and spectral extraction.

A run is described once in a YAML document; chandrakit validates it,
derives the dependent per-source parameters, and renders the argument
strings consumed by the external CIAO and SAOTrace tools.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Logger = log.Logger.With().Str("run_id", uuid.NewString()).Logger()

			var err error
			metrics, err = telemetry.NewMetrics(telemetry.DefaultConfig().Metrics)
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newShowCommand())

	return rootCmd
}
