package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CiaoOptions carries the flags every CIAO tool accepts.
type CiaoOptions struct {
	Verbose int  `yaml:"verbose" validate:"min=0,max=5"`
	Clobber bool `yaml:"clobber"`
}

// DefaultCiaoOptions returns the shared CIAO defaults.
func DefaultCiaoOptions() CiaoOptions {
	return CiaoOptions{Verbose: 1, Clobber: false}
}

// DMCopyOptions is the flag set of the dmcopy block-copy tool.
type DMCopyOptions struct {
	CiaoOptions `yaml:",inline"`

	Kernel string       `yaml:"kernel"`
	Option DMCopyOption `yaml:"option" validate:"oneof=all image bare none"`
}

// DefaultDMCopyOptions returns the dmcopy defaults.
func DefaultDMCopyOptions() DMCopyOptions {
	return DMCopyOptions{
		CiaoOptions: DefaultCiaoOptions(),
		Kernel:      "default",
		Option:      DMCopyOptionNone,
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (o *DMCopyOptions) UnmarshalYAML(node *yaml.Node) error {
	*o = DefaultDMCopyOptions()
	type raw DMCopyOptions
	return decodeStrict(node, (*raw)(o), "dmcopy")
}

// CmdArgs renders the flag set as space-joined name=value arguments in
// declaration order. Booleans render as yes/no.
func (o DMCopyOptions) CmdArgs() string {
	return cmdArgs(o)
}

// ChandraReproOptions is the flag set of the chandra_repro reprocessing
// script.
type ChandraReproOptions struct {
	CiaoOptions `yaml:",inline"`

	Root          string `yaml:"root"`
	Badpixel      bool   `yaml:"badpixel"`
	ProcessEvents bool   `yaml:"process_events"`
	Destreak      bool   `yaml:"destreak"`
	SetArdlib     bool   `yaml:"set_ardlib"`
	CheckVFPHA    bool   `yaml:"check_vf_pha"`
	PixAdj        PixAdj `yaml:"pix_adj" validate:"oneof=edser default"`
	AsolUpdate    bool   `yaml:"asol_update"`
	PIFilter      bool   `yaml:"pi_filter"`
	Cleanup       bool   `yaml:"cleanup"`
}

// DefaultChandraReproOptions returns the chandra_repro defaults.
func DefaultChandraReproOptions() ChandraReproOptions {
	return ChandraReproOptions{
		CiaoOptions:   DefaultCiaoOptions(),
		Root:          "",
		Badpixel:      true,
		ProcessEvents: true,
		Destreak:      true,
		SetArdlib:     true,
		CheckVFPHA:    false,
		PixAdj:        PixAdjDefault,
		AsolUpdate:    true,
		PIFilter:      true,
		Cleanup:       true,
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (o *ChandraReproOptions) UnmarshalYAML(node *yaml.Node) error {
	*o = DefaultChandraReproOptions()
	type raw ChandraReproOptions
	return decodeStrict(node, (*raw)(o), "chandra_repro")
}

// CmdArgs renders the flag set as space-joined name=value arguments.
func (o ChandraReproOptions) CmdArgs() string {
	return cmdArgs(o)
}

// ReprojectEventsOptions is the flag set of the reproject_events tool.
type ReprojectEventsOptions struct {
	CiaoOptions `yaml:",inline"`

	Aspect  string `yaml:"aspect"`
	Random  int    `yaml:"random"`
	Geompar string `yaml:"geompar"`
}

// DefaultReprojectEventsOptions returns the reproject_events defaults.
func DefaultReprojectEventsOptions() ReprojectEventsOptions {
	return ReprojectEventsOptions{
		CiaoOptions: DefaultCiaoOptions(),
		Aspect:      "",
		Random:      -1,
		Geompar:     "geom",
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (o *ReprojectEventsOptions) UnmarshalYAML(node *yaml.Node) error {
	*o = DefaultReprojectEventsOptions()
	type raw ReprojectEventsOptions
	return decodeStrict(node, (*raw)(o), "reproject_events")
}

// CmdArgs renders the flag set as space-joined name=value arguments.
func (o ReprojectEventsOptions) CmdArgs() string {
	return cmdArgs(o)
}

// SimulatePSFOptions is the flag set of the simulate_psf ray-projection
// tool.
type SimulatePSFOptions struct {
	CiaoOptions `yaml:",inline"`

	Monoenergy    *float64     `yaml:"monoenergy"`
	Flux          *float64     `yaml:"flux"`
	Simulator     PSFSimulator `yaml:"simulator" validate:"oneof=marx saotrace file"`
	Rayfile       string       `yaml:"rayfile"`
	Projector     string       `yaml:"projector"`
	RandomSeed    int          `yaml:"random_seed"`
	Blur          float64      `yaml:"blur" validate:"gt=0"`
	ReadoutStreak bool         `yaml:"readout_streak"`
	Pileup        bool         `yaml:"pileup"`
	Ideal         bool         `yaml:"ideal"`
	Extended      bool         `yaml:"extended"`
	Binsize       float64      `yaml:"binsize" validate:"gt=0"`
	Numsig        float64      `yaml:"numsig"`
	Minsize       *int         `yaml:"minsize"`
	Numiter       int          `yaml:"numiter" validate:"min=1"`
	Numrays       *int         `yaml:"numrays"`
	Keepiter      bool         `yaml:"keepiter"`
	Asolfile      *string      `yaml:"asolfile"`
	MarxRoot      string       `yaml:"marx_root"`
	RA            float64      `yaml:"ra"`
	Dec           float64      `yaml:"dec"`
}

// DefaultSimulatePSFOptions returns the simulate_psf defaults. The marx
// installation root comes from $CONDA_PREFIX when set.
func DefaultSimulatePSFOptions() SimulatePSFOptions {
	marxRoot := os.Getenv("CONDA_PREFIX")
	if marxRoot == "" {
		marxRoot = "${MARX_ROOT}"
	}
	return SimulatePSFOptions{
		CiaoOptions: DefaultCiaoOptions(),
		Simulator:   PSFSimulatorMarx,
		Rayfile:     "",
		Projector:   "marx",
		RandomSeed:  -1,
		Blur:        0.25,
		Ideal:       true,
		Extended:    true,
		Binsize:     1.0,
		Numsig:      7.0,
		Numiter:     1,
		MarxRoot:    marxRoot,
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (o *SimulatePSFOptions) UnmarshalYAML(node *yaml.Node) error {
	*o = DefaultSimulatePSFOptions()
	type raw SimulatePSFOptions
	return decodeStrict(node, (*raw)(o), "simulate_psf")
}

// CmdArgs renders the flag set as space-joined name=value arguments.
func (o SimulatePSFOptions) CmdArgs() string {
	return cmdArgs(o)
}

// SpecExtractOptions is the flag set of the specextract spectral-extraction
// script.
type SpecExtractOptions struct {
	CiaoOptions `yaml:",inline"`

	Bkgfile           *string   `yaml:"bkgfile"`
	Asp               string    `yaml:"asp"`
	Dtffile           *string   `yaml:"dtffile"`
	Mskfile           *string   `yaml:"mskfile"`
	Rmffile           string    `yaml:"rmffile"`
	Badpixfile        string    `yaml:"badpixfile"`
	Dafile            string    `yaml:"dafile"`
	Bkgresp           bool      `yaml:"bkgresp"`
	Weight            bool      `yaml:"weight"`
	WeightRMF         bool      `yaml:"weight_rmf"`
	Refcoord          *string   `yaml:"refcoord"`
	Correctpsf        bool      `yaml:"correctpsf"`
	Combine           bool      `yaml:"combine"`
	ReadoutStreakspec bool      `yaml:"readout_streakspec"`
	Grouptype         GroupType `yaml:"grouptype" validate:"oneof=NUM_CTS NONE"`
	Binspec           string    `yaml:"binspec"`
	BkgGrouptype      GroupType `yaml:"bkg_grouptype" validate:"oneof=NUM_CTS NONE"`
	BkgBinspec        *string   `yaml:"bkg_binspec"`
	Energy            string    `yaml:"energy"`
	Channel           string    `yaml:"channel"`
	EnergyWmap        string    `yaml:"energy_wmap"`
	Binarfcorr        string    `yaml:"binarfcorr"`
	Binwmap           string    `yaml:"binwmap"`
	Binarfwmap        string    `yaml:"binarfwmap"`
	Parallel          bool      `yaml:"parallel"`
	Nproc             *int      `yaml:"nproc"`
	Tmpdir            string    `yaml:"tmpdir"`
}

// DefaultSpecExtractOptions returns the specextract defaults.
func DefaultSpecExtractOptions() SpecExtractOptions {
	return SpecExtractOptions{
		CiaoOptions:  DefaultCiaoOptions(),
		Asp:          "",
		Rmffile:      "CALDB",
		Badpixfile:   "",
		Dafile:       "CALDB",
		Bkgresp:      true,
		Weight:       true,
		WeightRMF:    false,
		Grouptype:    GroupTypeNumCounts,
		Binspec:      "15",
		BkgGrouptype: GroupTypeNone,
		Energy:       "0.3:11.0:0.01",
		Channel:      "1:1024:1",
		EnergyWmap:   "300:2000",
		Binarfcorr:   "1",
		Binwmap:      "tdet=8",
		Binarfwmap:   "1",
		Parallel:     false,
		Tmpdir:       "${ASCDS_WORK_PATH}",
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (o *SpecExtractOptions) UnmarshalYAML(node *yaml.Node) error {
	*o = DefaultSpecExtractOptions()
	type raw SpecExtractOptions
	return decodeStrict(node, (*raw)(o), "specextract")
}

// CmdArgs renders the flag set as space-joined name=value arguments.
func (o SpecExtractOptions) CmdArgs() string {
	return cmdArgs(o)
}

// CiaoToolsConfig bundles the flag sets for every CIAO stage of a run.
type CiaoToolsConfig struct {
	DMCopy          DMCopyOptions          `yaml:"dmcopy"`
	ChandraRepro    ChandraReproOptions    `yaml:"chandra_repro"`
	ReprojectEvents ReprojectEventsOptions `yaml:"reproject_events"`
	SimulatePSF     SimulatePSFOptions     `yaml:"simulate_psf"`
	SpecExtract     SpecExtractOptions     `yaml:"specextract"`
}

// DefaultCiaoToolsConfig returns defaults for every tool.
func DefaultCiaoToolsConfig() CiaoToolsConfig {
	return CiaoToolsConfig{
		DMCopy:          DefaultDMCopyOptions(),
		ChandraRepro:    DefaultChandraReproOptions(),
		ReprojectEvents: DefaultReprojectEventsOptions(),
		SimulatePSF:     DefaultSimulatePSFOptions(),
		SpecExtract:     DefaultSpecExtractOptions(),
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (c *CiaoToolsConfig) UnmarshalYAML(node *yaml.Node) error {
	*c = DefaultCiaoToolsConfig()
	type raw CiaoToolsConfig
	return decodeStrict(node, (*raw)(c), "ciao")
}
