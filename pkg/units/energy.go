package units

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnergyUnit identifies the unit an energy value is expressed in.
type EnergyUnit string

const (
	// ElectronVolt is the base energy unit.
	ElectronVolt EnergyUnit = "eV"

	// KiloElectronVolt is 1e3 eV.
	KiloElectronVolt EnergyUnit = "keV"

	// MegaElectronVolt is 1e6 eV.
	MegaElectronVolt EnergyUnit = "MeV"
)

// eVPer maps each energy unit to its size in electron volts.
var eVPer = map[EnergyUnit]float64{
	ElectronVolt:     1,
	KiloElectronVolt: 1e3,
	MegaElectronVolt: 1e6,
}

// Energy is an energy quantity with an explicit unit. The unit an energy was
// declared in is preserved through formatting and serialization.
type Energy struct {
	Value float64
	Unit  EnergyUnit
}

// NewEnergy returns an energy with the given value and unit.
func NewEnergy(value float64, unit EnergyUnit) Energy {
	return Energy{Value: value, Unit: unit}
}

// ParseEnergy parses strings of the form "<value> <unit>", e.g. "0.5 keV".
// A bare number is interpreted as keV.
func ParseEnergy(s string) (Energy, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Energy{}, fmt.Errorf("invalid energy %q", s)
		}
		return Energy{Value: v, Unit: KiloElectronVolt}, nil
	case 2:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Energy{}, fmt.Errorf("invalid energy value %q", fields[0])
		}
		unit := EnergyUnit(fields[1])
		if _, ok := eVPer[unit]; !ok {
			return Energy{}, fmt.Errorf("unknown energy unit %q", fields[1])
		}
		return Energy{Value: v, Unit: unit}, nil
	default:
		return Energy{}, fmt.Errorf("invalid energy %q", s)
	}
}

// ToValue returns the numeric value of the energy converted to the given unit.
func (e Energy) ToValue(unit EnergyUnit) float64 {
	return e.Value * eVPer[e.Unit] / eVPer[unit]
}

// String renders the canonical form "<value> <unit>".
func (e Energy) String() string {
	return strconv.FormatFloat(e.Value, 'f', -1, 64) + " " + string(e.Unit)
}

// MarshalYAML implements yaml.Marshaler.
func (e Energy) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Energy) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: energy must be a scalar", node.Line)
	}
	parsed, err := ParseEnergy(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = parsed
	return nil
}
