package config

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ChandraConfig is the root of one analysis run: the observation list, the
// region of interest, the per-source IRF sections, and the flag sets for
// every external tool stage.
type ChandraConfig struct {
	Name         string          `yaml:"name" validate:"required"`
	SubName      string          `yaml:"sub_name" validate:"required"`
	PathData     string          `yaml:"path_data" validate:"required"`
	ObsIDs       []int           `yaml:"obs_ids" validate:"min=1"`
	ObsIDRef     int             `yaml:"obs_id_ref"`
	ROI          ROIConfig       `yaml:"roi"`
	PSFSimulator PSFSimulator    `yaml:"psf_simulator" validate:"oneof=marx saotrace file"`
	IRFs         *IRFSet         `yaml:"irfs"`
	Ciao         CiaoToolsConfig `yaml:"ciao"`
	SAOTrace     SAOTraceConfig  `yaml:"saotrace"`
}

// Default returns a fully derived default run configuration.
func Default() *ChandraConfig {
	cfg := &ChandraConfig{
		Name:         "my-analysis",
		SubName:      "my-config",
		PathData:     "./data",
		ObsIDs:       []int{62558},
		ObsIDRef:     62558,
		ROI:          DefaultROIConfig(),
		PSFSimulator: PSFSimulatorMarx,
		IRFs:         DefaultIRFSet(),
		Ciao:         DefaultCiaoToolsConfig(),
		SAOTrace:     DefaultSAOTraceConfig(),
	}
	derive(cfg)
	return cfg
}

// FromYAML constructs a run configuration from a YAML document: defaults,
// strict decoding, validation, then derivation. Any failure aborts the
// whole construction.
func FromYAML(text string) (*ChandraConfig, error) {
	cfg := Default()

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, schemaErr("config", "", 0, "%v", err)
	}
	if len(doc.Content) > 0 {
		type raw ChandraConfig
		if err := decodeStrict(doc.Content[0], (*raw)(cfg), "config"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	derive(cfg)
	return cfg, nil
}

// Read constructs a run configuration from a YAML file.
func Read(path string) (*ChandraConfig, error) {
	log.Info().Str("path", path).Msg("reading run configuration")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(string(data))
}

// Validate checks field constraints and cross-field invariants over the
// whole tree. It can be called again after programmatic mutation; the tree
// is otherwise treated as read-only after construction.
func (c *ChandraConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return asValidationError(err)
	}
	if err := c.ROI.EnergyRange.Validate(); err != nil {
		return err
	}
	for _, label := range c.IRFs.Labels() {
		irf, _ := c.IRFs.Get(label)
		if err := validate.Struct(irf); err != nil {
			return asValidationError(err)
		}
		if err := irf.Spectrum.EnergyRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// asValidationError converts validator failures into the schema error type.
func asValidationError(err error) error {
	var ferrs validator.ValidationErrors
	if errors.As(err, &ferrs) && len(ferrs) > 0 {
		fe := ferrs[0]
		return schemaErr(
			strings.ToLower(fe.StructNamespace()), "", 0,
			"failed %q constraint (value %v)", fe.Tag(), fe.Value(),
		)
	}
	return err
}

// ToYAML serializes the tree honoring every section's visibility
// projection. Quantities render as "<value> <unit>" with angles in their
// canonical decimal form.
func (c *ChandraConfig) ToYAML() (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(4)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write serializes the configuration to a file. An existing destination is
// an error unless overwrite is set; the file is only written after the full
// document serialized successfully in memory.
func (c *ChandraConfig) Write(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return &FileExistsError{Path: path}
	}

	data, err := c.ToYAML()
	if err != nil {
		return err
	}

	log.Info().Str("path", path).Msg("writing run configuration")
	return os.WriteFile(path, []byte(data), 0o644)
}

// String renders the configuration as an indented YAML display block.
func (c *ChandraConfig) String() string {
	data, err := c.ToYAML()
	if err != nil {
		return "ChandraConfig"
	}
	return "ChandraConfig\n\n  " + strings.TrimRight(strings.ReplaceAll(data, "\n", "\n  "), " ")
}
