package config

import (
	"fmt"

	"github.com/chandrakit/chandrakit/pkg/units"
	"gopkg.in/yaml.v3"
)

// PerSourcePSFConfig is the per-source override view of the simulate_psf
// flag set. A small subset of fields is exposed for override; ra, dec,
// binsize, and simulator are linked fields the enclosing run writes during
// derivation, and they are always included when the section renders even
// though the user never sets them here.
type PerSourcePSFConfig struct {
	SimulatePSFOptions `yaml:",inline"`
}

// DefaultPerSourcePSFConfig returns simulate_psf defaults.
func DefaultPerSourcePSFConfig() PerSourcePSFConfig {
	return PerSourcePSFConfig{SimulatePSFOptions: DefaultSimulatePSFOptions()}
}

// UnmarshalYAML applies defaults before strict decoding.
func (p *PerSourcePSFConfig) UnmarshalYAML(node *yaml.Node) error {
	*p = DefaultPerSourcePSFConfig()
	type raw PerSourcePSFConfig
	return decodeStrict(node, (*raw)(p), "psf")
}

// perSourcePSFView is the rendered projection: the six override fields plus
// the four force-included linked fields.
type perSourcePSFView struct {
	Pileup        bool         `yaml:"pileup"`
	ReadoutStreak bool         `yaml:"readout_streak"`
	Extended      bool         `yaml:"extended"`
	Minsize       *int         `yaml:"minsize"`
	Numiter       int          `yaml:"numiter"`
	Blur          float64      `yaml:"blur"`
	RA            float64      `yaml:"ra"`
	Dec           float64      `yaml:"dec"`
	Binsize       float64      `yaml:"binsize"`
	Simulator     PSFSimulator `yaml:"simulator"`
}

func (p PerSourcePSFConfig) view() perSourcePSFView {
	return perSourcePSFView{
		Pileup:        p.Pileup,
		ReadoutStreak: p.ReadoutStreak,
		Extended:      p.Extended,
		Minsize:       p.Minsize,
		Numiter:       p.Numiter,
		Blur:          p.Blur,
		RA:            p.RA,
		Dec:           p.Dec,
		Binsize:       p.Binsize,
		Simulator:     p.Simulator,
	}
}

// MarshalYAML serializes the rendered projection.
func (p PerSourcePSFConfig) MarshalYAML() (interface{}, error) {
	return p.view(), nil
}

// RenderArgs renders the projection as name=value arguments, in projection
// order.
func (p PerSourcePSFConfig) RenderArgs() []string {
	return structArgs(p.view())
}

// PerSourceSpecExtractConfig is the per-source override view of the
// specextract flag set, extended with the extraction circle and energy
// binning. The background region file stays hidden from the document; it is
// only consumed by the background selector render path.
type PerSourceSpecExtractConfig struct {
	SpecExtractOptions `yaml:",inline"`

	Center               SkyPosition `yaml:"center"`
	Radius               units.Angle `yaml:"radius"`
	EnergyRange          EnergyRange `yaml:"energy_range"`
	EnergyGroups         int         `yaml:"energy_groups" validate:"min=1"`
	EnergyStep           float64     `yaml:"energy_step" validate:"gt=0"`
	BackgroundRegionFile string      `yaml:"background_region_file"`
}

// DefaultPerSourceSpecExtractConfig returns a 3 arcsec extraction circle at
// the default position.
func DefaultPerSourceSpecExtractConfig() PerSourceSpecExtractConfig {
	return PerSourceSpecExtractConfig{
		SpecExtractOptions: DefaultSpecExtractOptions(),
		Center:             DefaultSkyPosition(),
		Radius:             units.NewAngle(3, units.Arcsec),
		EnergyRange:        DefaultEnergyRange(),
		EnergyGroups:       5,
		EnergyStep:         0.01,
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (s *PerSourceSpecExtractConfig) UnmarshalYAML(node *yaml.Node) error {
	*s = DefaultPerSourceSpecExtractConfig()
	type raw PerSourceSpecExtractConfig
	return decodeStrict(node, (*raw)(s), "spectrum")
}

// perSourceSpecView is the visible-field projection.
type perSourceSpecView struct {
	Center       SkyPosition `yaml:"center"`
	Radius       units.Angle `yaml:"radius"`
	EnergyRange  EnergyRange `yaml:"energy_range"`
	EnergyGroups int         `yaml:"energy_groups"`
	EnergyStep   float64     `yaml:"energy_step"`
}

// MarshalYAML serializes the visible field subset.
func (s PerSourceSpecExtractConfig) MarshalYAML() (interface{}, error) {
	return perSourceSpecView{
		Center:       s.Center,
		Radius:       s.Radius,
		EnergyRange:  s.EnergyRange,
		EnergyGroups: s.EnergyGroups,
		EnergyStep:   s.EnergyStep,
	}, nil
}

// Region returns the spectral extraction circle on the sky.
func (s PerSourceSpecExtractConfig) Region() units.CircleRegion {
	return units.CircleRegion{Center: s.Center.SkyCoord(), Radius: s.Radius}
}

// ToRegionSelector formats the extraction region selection expression under
// the given transform: "[sky=circle(<x>,<y>,<radius>)]" in pixel units.
func (s PerSourceSpecExtractConfig) ToRegionSelector(wcs units.WCS) string {
	pix := s.Region().ToPixel(wcs)
	return fmt.Sprintf("[sky=circle(%s,%s,%s)]",
		formatFloat(pix.X), formatFloat(pix.Y), formatFloat(pix.Radius))
}

// ToEnergySelector formats the energy binning as
// "<min_keV>:<max_keV>:<energy_step>".
func (s PerSourceSpecExtractConfig) ToEnergySelector() string {
	return fmt.Sprintf("%s:%s:%s",
		formatFloat(s.EnergyRange.Min.ToValue(units.KiloElectronVolt)),
		formatFloat(s.EnergyRange.Max.ToValue(units.KiloElectronVolt)),
		formatFloat(s.EnergyStep))
}

// ToBackgroundSelector formats the background region selection expression.
// It fails when no background region file was configured; the field is
// optional until this render path is used.
func (s PerSourceSpecExtractConfig) ToBackgroundSelector() (string, error) {
	if s.BackgroundRegionFile == "" {
		return "", &MissingReferenceError{Section: "spectrum", Field: "background_region_file"}
	}
	return fmt.Sprintf("[(x,y)=region(%s)]", s.BackgroundRegionFile), nil
}

// IRFConfig binds a source's spectral extraction region to its PSF
// simulation. The PSF position is never specified independently: derivation
// copies the spectral center's ICRS coordinates into psf.ra/psf.dec.
type IRFConfig struct {
	Spectrum PerSourceSpecExtractConfig `yaml:"spectrum"`
	PSF      PerSourcePSFConfig         `yaml:"psf"`
}

// DefaultIRFConfig returns a derived default IRF section.
func DefaultIRFConfig() *IRFConfig {
	irf := &IRFConfig{
		Spectrum: DefaultPerSourceSpecExtractConfig(),
		PSF:      DefaultPerSourcePSFConfig(),
	}
	irf.derive()
	return irf
}

// UnmarshalYAML applies defaults, strict-decodes, and runs the ra/dec
// derivation for the section.
func (c *IRFConfig) UnmarshalYAML(node *yaml.Node) error {
	c.Spectrum = DefaultPerSourceSpecExtractConfig()
	c.PSF = DefaultPerSourcePSFConfig()
	type raw IRFConfig
	if err := decodeStrict(node, (*raw)(c), "irfs"); err != nil {
		return err
	}
	c.derive()
	return nil
}

// derive overwrites the PSF position with the spectral center in ICRS
// degrees.
func (c *IRFConfig) derive() {
	icrs := c.Spectrum.Center.SkyCoord().ICRS()
	c.PSF.RA = icrs.Lon.Value
	c.PSF.Dec = icrs.Lat.Value
}

// IRFSet is an ordered label -> IRFConfig mapping. Labels are unique and
// document order is preserved so rendering is deterministic.
type IRFSet struct {
	labels  []string
	entries map[string]*IRFConfig
}

// NewIRFSet builds a set from label/section pairs.
func NewIRFSet() *IRFSet {
	return &IRFSet{entries: make(map[string]*IRFConfig)}
}

// DefaultIRFSet returns a set with the single default source.
func DefaultIRFSet() *IRFSet {
	s := NewIRFSet()
	s.Set("pks-0637", DefaultIRFConfig())
	return s
}

// Set adds or replaces the section for a label, keeping first-insertion
// order.
func (s *IRFSet) Set(label string, irf *IRFConfig) {
	if s.entries == nil {
		s.entries = make(map[string]*IRFConfig)
	}
	if _, ok := s.entries[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.entries[label] = irf
}

// Get returns the section for a label.
func (s *IRFSet) Get(label string) (*IRFConfig, bool) {
	irf, ok := s.entries[label]
	return irf, ok
}

// Labels returns the labels in document order.
func (s *IRFSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of sources.
func (s *IRFSet) Len() int {
	return len(s.labels)
}

// UnmarshalYAML decodes the mapping, preserving key order and rejecting
// duplicate labels.
func (s *IRFSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return schemaErr("irfs", "", node.Line, "expected a mapping of source labels")
	}
	s.labels = nil
	s.entries = make(map[string]*IRFConfig)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if _, ok := s.entries[key.Value]; ok {
			return schemaErr("irfs", key.Value, key.Line, "duplicate source label")
		}
		irf := new(IRFConfig)
		if err := irf.UnmarshalYAML(value); err != nil {
			return err
		}
		s.labels = append(s.labels, key.Value)
		s.entries[key.Value] = irf
	}
	return nil
}

// MarshalYAML serializes the sections in document order.
func (s *IRFSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, label := range s.labels {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: label}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(s.entries[label]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
