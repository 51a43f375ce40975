package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Output filename patterns the executor expects, indexed by the 4-digit
// zero-padded file index.
const (
	SAOTraceOutputPattern = "saotrace_output_i%04d.fits"
	MarxOutputPattern     = "i%04d_marx.fits"
)

// srcparsTemplate is the fixed trace-nest source parameter block. The lua
// syntax needs literal braces (the spectrum table is doubly nested), so the
// template uses << >> delimiters and leaves every brace alone.
const srcparsTemplate = `
ra_pnt   = <<.RaPnt>>
dec_pnt  = <<.DecPnt>>
roll_pnt = <<.RollPnt>>

dither_asol{
        file = '<<.AsolFile>>',
        ra   = ra_pnt,
        dec  = dec_pnt,
        roll = roll_pnt
    }

point{
    position = {
        ra = <<.RA>>,
        dec = <<.Dec>>,
        ra_aimpt = ra_pnt,
        dec_aimpt = dec_pnt,
       },

    spectrum = {{
        file = '<<.SpectrumFile>>',
        units = 'photons/s/cm2',
        scale = 1,
        emin = 'emin',
        emax = 'emax',
        flux = 'flux',
        format = 'rdb'
        }}
    }
`

var srcparsTmpl = template.Must(
	template.New("srcpars").Delims("<<", ">>").Parse(srcparsTemplate))

// srcparsData carries the values filled into srcparsTemplate.
type srcparsData struct {
	RaPnt        string
	DecPnt       string
	RollPnt      string
	AsolFile     string
	RA           string
	Dec          string
	SpectrumFile string
}

// SAOTraceConfig is the flag set of the trace-nest ray-trace simulator plus
// the per-source source-parameter block synthesis.
type SAOTraceConfig struct {
	Tag             string   `yaml:"tag"`
	Srcpars         string   `yaml:"srcpars"`
	Shells          string   `yaml:"shells"`
	Tstart          float64  `yaml:"tstart"`
	Limit           float64  `yaml:"limit"`
	Z               float64  `yaml:"z"`
	Src             string   `yaml:"src"`
	Output          string   `yaml:"output"`
	OutputFmt       string   `yaml:"output_fmt"`
	OutputCoord     string   `yaml:"output_coord"`
	OutputFields    string   `yaml:"output_fields"`
	LimitType       string   `yaml:"limit_type"`
	Seed1           int      `yaml:"seed1" validate:"min=1"`
	Seed2           int      `yaml:"seed2" validate:"min=1"`
	Block           int      `yaml:"block" validate:"min=0"`
	BlockInc        int      `yaml:"block_inc"`
	Focus           string   `yaml:"focus"`
	Tally           int      `yaml:"tally"`
	Throttle        int      `yaml:"throttle"`
	ThrottlePoisson string   `yaml:"throttle_poisson"`
	ConfigDir       string   `yaml:"config_dir"`
	ConfigDB        string   `yaml:"config_db"`
	Clean           string   `yaml:"clean"`
	Debug           []string `yaml:"debug"`
	Help            string   `yaml:"help"`
	Version         string   `yaml:"version"`
	Mode            string   `yaml:"mode"`
}

// DefaultSAOTraceConfig returns the trace-nest defaults.
func DefaultSAOTraceConfig() SAOTraceConfig {
	return SAOTraceConfig{
		Tag:             "foo",
		Srcpars:         "src.lua",
		Shells:          "all",
		Tstart:          0,
		Limit:           0.01,
		Z:               10079.774,
		Src:             "default",
		Output:          "default",
		OutputFmt:       "fits-axaf",
		OutputCoord:     "hrma",
		OutputFields:    "min",
		LimitType:       "sec",
		Seed1:           1,
		Seed2:           1,
		Block:           0,
		BlockInc:        100,
		Focus:           "no",
		Tally:           0,
		Throttle:        -1,
		ThrottlePoisson: "no",
		ConfigDir:       "${SAOTRACE_DB}/ts_config",
		ConfigDB:        "orbit-200809-01f-a",
		Clean:           "all",
		Debug:           []string{""},
		Help:            "no",
		Version:         "no",
		Mode:            "a",
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (c *SAOTraceConfig) UnmarshalYAML(node *yaml.Node) error {
	*c = DefaultSAOTraceConfig()
	type raw SAOTraceConfig
	return decodeStrict(node, (*raw)(c), "saotrace")
}

// ToTraceArgs renders the trace-nest argument list for one ray file of one
// source. Output paths, timing, and the tag are overwritten from the
// observation index, then seed1, seed2, and block are drawn from the stream
// in that fixed order. The draw order is part of the reproducibility
// contract: reordering it changes every downstream output.
func (c SAOTraceConfig) ToTraceArgs(idx *ObservationIndex, fileIdx int, label string, stream *RandomStream) ([]string, error) {
	dir, ok := idx.SAOTraceDirs[label]
	if !ok {
		return nil, &MissingReferenceError{Section: "saotrace", Field: "output directory for source " + label}
	}

	c.Output = filepath.Join(dir, fmt.Sprintf(SAOTraceOutputPattern, fileIdx))
	c.Srcpars = filepath.Join(dir, "src.lua")
	c.Tstart = idx.TStart
	c.Limit = idx.Limit
	c.Tag = label + "_" + strconv.Itoa(idx.ObsID)

	c.Seed1 = stream.IntN(1, 2147483562)
	c.Seed2 = stream.IntN(1, 214748339)
	c.Block = stream.IntN(0, 1048575)

	return structArgs(c), nil
}

// ToSourceParams fills the source parameter block for one source: pointing
// angles and aspect solution from the observation index, the source
// position from the derived PSF coordinates, and the per-source spectrum
// file. The block layout is fixed.
func (c SAOTraceConfig) ToSourceParams(idx *ObservationIndex, irf *IRFConfig, label string) (string, error) {
	spectrum, ok := idx.SpectrumFiles[label]
	if !ok {
		return "", &MissingReferenceError{Section: "saotrace", Field: "spectrum file for source " + label}
	}

	var b strings.Builder
	err := srcparsTmpl.Execute(&b, srcparsData{
		RaPnt:        formatFloat(idx.RaPnt),
		DecPnt:       formatFloat(idx.DecPnt),
		RollPnt:      formatFloat(idx.RollPnt),
		AsolFile:     idx.ReproAsolFile,
		RA:           formatFloat(irf.PSF.RA),
		Dec:          formatFloat(irf.PSF.Dec),
		SpectrumFile: spectrum,
	})
	if err != nil {
		return "", fmt.Errorf("rendering source parameters: %w", err)
	}
	return b.String(), nil
}
