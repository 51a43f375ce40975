package config

import (
	"fmt"

	"github.com/chandrakit/chandrakit/pkg/units"
	"gopkg.in/yaml.v3"
)

// EnergyRange is a closed energy interval. Min must be strictly below Max.
type EnergyRange struct {
	Min units.Energy `yaml:"min"`
	Max units.Energy `yaml:"max"`
}

// DefaultEnergyRange returns the 0.5-7 keV analysis band.
func DefaultEnergyRange() EnergyRange {
	return EnergyRange{
		Min: units.NewEnergy(0.5, units.KiloElectronVolt),
		Max: units.NewEnergy(7, units.KiloElectronVolt),
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (r *EnergyRange) UnmarshalYAML(node *yaml.Node) error {
	*r = DefaultEnergyRange()
	type raw EnergyRange
	return decodeStrict(node, (*raw)(r), "energy_range")
}

// Validate enforces min < max.
func (r EnergyRange) Validate() error {
	if r.Min.ToValue(units.ElectronVolt) >= r.Max.ToValue(units.ElectronVolt) {
		return invariantErr("energy_range", "", "min (%s) must be below max (%s)", r.Min, r.Max)
	}
	return nil
}

// SkyPosition is a reference frame plus a longitude/latitude angle pair.
// The frame-aware coordinate object is derived on demand, never stored.
type SkyPosition struct {
	Frame units.Frame `yaml:"frame" validate:"oneof=icrs fk5 galactic"`
	Lon   units.Angle `yaml:"lon"`
	Lat   units.Angle `yaml:"lat"`
}

// DefaultSkyPosition returns the position of PKS 0637-752.
func DefaultSkyPosition() SkyPosition {
	return SkyPosition{
		Frame: units.FrameICRS,
		Lon:   units.MustParseAngle("06h35m46.5079301472s"),
		Lat:   units.MustParseAngle("-75d16m16.816418256s"),
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (p *SkyPosition) UnmarshalYAML(node *yaml.Node) error {
	*p = DefaultSkyPosition()
	type raw SkyPosition
	return decodeStrict(node, (*raw)(p), "center")
}

// SkyCoord returns the frame-aware coordinate for this position.
func (p SkyPosition) SkyCoord() units.SkyCoord {
	return units.NewSkyCoord(p.Lon, p.Lat, p.Frame)
}

// ROIConfig describes the region-of-interest cutout: the dmcopy flag set
// plus the window geometry and energy band. Only the geometry fields appear
// in the serialized document; the tool flags stay internal.
type ROIConfig struct {
	DMCopyOptions `yaml:",inline"`

	Center      SkyPosition `yaml:"center"`
	Width       units.Angle `yaml:"width"`
	BinSize     float64     `yaml:"bin_size" validate:"gt=0"`
	EnergyRange EnergyRange `yaml:"energy_range"`
}

// DefaultROIConfig returns a 5 arcsec window at the default position.
func DefaultROIConfig() ROIConfig {
	return ROIConfig{
		DMCopyOptions: DefaultDMCopyOptions(),
		Center:        DefaultSkyPosition(),
		Width:         units.NewAngle(5, units.Arcsec),
		BinSize:       1.0,
		EnergyRange:   DefaultEnergyRange(),
	}
}

// UnmarshalYAML applies defaults before strict decoding.
func (r *ROIConfig) UnmarshalYAML(node *yaml.Node) error {
	*r = DefaultROIConfig()
	type raw ROIConfig
	return decodeStrict(node, (*raw)(r), "roi")
}

// roiView is the visible-field projection of ROIConfig.
type roiView struct {
	Center      SkyPosition `yaml:"center"`
	Width       units.Angle `yaml:"width"`
	BinSize     float64     `yaml:"bin_size"`
	EnergyRange EnergyRange `yaml:"energy_range"`
}

// MarshalYAML serializes the visible field subset, in declared order.
func (r ROIConfig) MarshalYAML() (interface{}, error) {
	return roiView{
		Center:      r.Center,
		Width:       r.Width,
		BinSize:     r.BinSize,
		EnergyRange: r.EnergyRange,
	}, nil
}

// Region returns the square ROI region on the sky.
func (r ROIConfig) Region() units.RectRegion {
	return units.RectRegion{
		Center: r.Center.SkyCoord(),
		Width:  r.Width,
		Height: r.Width,
	}
}

// ToDMCopySelector formats the dmcopy selection expression for the ROI
// under the given transform: the spatial bin clause first, then the energy
// clause in electron volts.
func (r ROIConfig) ToDMCopySelector(wcs units.WCS) string {
	bbox := r.Region().BoundingBox(wcs)
	bin := formatFloat(r.BinSize)
	spatial := fmt.Sprintf("bin x=%d:%d:%s, y=%d:%d:%s",
		bbox.IXMin, bbox.IXMax, bin, bbox.IYMin, bbox.IYMax, bin)
	spectral := fmt.Sprintf("energy=%s:%s",
		formatFloat(r.EnergyRange.Min.ToValue(units.ElectronVolt)),
		formatFloat(r.EnergyRange.Max.ToValue(units.ElectronVolt)))
	return fmt.Sprintf("[EVENTS][%s][%s]", spatial, spectral)
}

// BoundedRegion is any sky region with an integer pixel bounding box under
// a transform.
type BoundedRegion interface {
	BoundingBox(units.WCS) units.BoundingBox
}

// RegionToGridSpec formats the pixel grid covering a region's bounding box:
// "<ixmin>:<ixmax>:#<nx>,<iymin>:<iymax>:#<ny>". Cell counts truncate, so a
// partial trailing cell is dropped.
func RegionToGridSpec(region BoundedRegion, wcs units.WCS, binSize float64) string {
	bbox := region.BoundingBox(wcs)
	nx := int(float64(bbox.Width()) / binSize)
	ny := int(float64(bbox.Height()) / binSize)
	return fmt.Sprintf("%d:%d:#%d,%d:%d:#%d",
		bbox.IXMin, bbox.IXMax, nx, bbox.IYMin, bbox.IYMax, ny)
}
