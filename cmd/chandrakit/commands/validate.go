package commands

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chandrakit/chandrakit/pkg/config"
)

func newValidateCommand() *cobra.Command {
	var (
		strict bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a run configuration document",
		Long: `Validate a run configuration document.

This command checks:
  - YAML syntax validity
  - closed-schema conformance (unknown keys are errors)
  - typed field coercion (angles, energies, enumerations)
  - cross-field invariants (energy ranges, derivations)`,
		Example: `  # Validate a document
  chandrakit validate run.yaml

  # Also validate the raw document against the CUE run schema
  chandrakit validate --strict run.yaml

  # Re-validate whenever the file changes
  chandrakit validate --watch run.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if watch {
				log.Info().Str("path", path).Msg("watching configuration")
				reportValidation(path, strict)
				return config.Watch(cmd.Context(), path, func(*config.ChandraConfig, error) {
					reportValidation(path, strict)
				})
			}

			if err := validateOnce(path, strict); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("configuration is valid")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "also validate against the CUE run schema")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-validate whenever the file changes")

	return cmd
}

func validateOnce(path string, strict bool) error {
	if strict {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		if err := config.NewSchemaRegistry().ValidateDocument(doc); err != nil {
			metrics.ValidationFailure("schema")
			return err
		}
	}

	if _, err := config.Read(path); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailure(string(verr.Kind))
		} else {
			metrics.ValidationFailure("other")
		}
		return err
	}
	metrics.DocumentRead()
	return nil
}

func reportValidation(path string, strict bool) {
	if err := validateOnce(path, strict); err != nil {
		log.Error().Err(err).Str("path", path).Msg("configuration is invalid")
		return
	}
	log.Info().Str("path", path).Msg("configuration is valid")
}
