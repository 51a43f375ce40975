package units

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AngleUnit identifies the unit an angle value is expressed in.
type AngleUnit string

const (
	// Degree is the decimal degree unit.
	Degree AngleUnit = "deg"

	// Arcmin is 1/60 of a degree.
	Arcmin AngleUnit = "arcmin"

	// Arcsec is 1/3600 of a degree.
	Arcsec AngleUnit = "arcsec"

	// HourAngle is 15 degrees (one hour of right ascension).
	HourAngle AngleUnit = "hourangle"
)

// degreesPer maps each angle unit to its size in degrees.
var degreesPer = map[AngleUnit]float64{
	Degree:    1,
	Arcmin:    1.0 / 60,
	Arcsec:    1.0 / 3600,
	HourAngle: 15,
}

// Angle is an angular quantity with an explicit unit. The unit an angle was
// declared in is preserved through formatting and serialization.
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// NewAngle returns an angle with the given value and unit.
func NewAngle(value float64, unit AngleUnit) Angle {
	return Angle{Value: value, Unit: unit}
}

var (
	hourSexagesimalRe = regexp.MustCompile(`^([+-]?)(\d+)h(\d+)m([0-9.]+)s$`)
	degSexagesimalRe  = regexp.MustCompile(`^([+-]?)(\d+)d(\d+)m([0-9.]+)s$`)
)

// ParseAngle parses an angle string. Accepted forms:
//
//	"5 arcsec"              value with unit
//	"1.5"                   bare number, interpreted as degrees
//	"06h35m46.5s"           sexagesimal hour angle
//	"-75d16m16.8s"          sexagesimal degrees
//
// Sexagesimal forms canonicalize to decimal degrees.
func ParseAngle(s string) (Angle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Angle{}, fmt.Errorf("empty angle")
	}

	if m := hourSexagesimalRe.FindStringSubmatch(s); m != nil {
		deg, err := sexagesimalToUnit(m, 15)
		if err != nil {
			return Angle{}, fmt.Errorf("invalid angle %q: %w", s, err)
		}
		return Angle{Value: deg, Unit: Degree}, nil
	}
	if m := degSexagesimalRe.FindStringSubmatch(s); m != nil {
		deg, err := sexagesimalToUnit(m, 1)
		if err != nil {
			return Angle{}, fmt.Errorf("invalid angle %q: %w", s, err)
		}
		return Angle{Value: deg, Unit: Degree}, nil
	}

	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Angle{}, fmt.Errorf("invalid angle %q", s)
		}
		return Angle{Value: v, Unit: Degree}, nil
	case 2:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Angle{}, fmt.Errorf("invalid angle value %q", fields[0])
		}
		unit := AngleUnit(fields[1])
		if _, ok := degreesPer[unit]; !ok {
			return Angle{}, fmt.Errorf("unknown angle unit %q", fields[1])
		}
		return Angle{Value: v, Unit: unit}, nil
	default:
		return Angle{}, fmt.Errorf("invalid angle %q", s)
	}
}

// MustParseAngle is like ParseAngle but panics on error. Intended for
// package-level defaults.
func MustParseAngle(s string) Angle {
	a, err := ParseAngle(s)
	if err != nil {
		panic(err)
	}
	return a
}

func sexagesimalToUnit(m []string, unitDeg float64) (float64, error) {
	whole, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, err
	}
	seconds, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return 0, err
	}
	v := (whole + minutes/60 + seconds/3600) * unitDeg
	if m[1] == "-" {
		v = -v
	}
	return v, nil
}

// Degrees returns the angle converted to decimal degrees.
func (a Angle) Degrees() float64 {
	return a.Value * degreesPer[a.Unit]
}

// To converts the angle to the given unit.
func (a Angle) To(unit AngleUnit) Angle {
	return Angle{Value: a.Degrees() / degreesPer[unit], Unit: unit}
}

// String renders the canonical form "<value> <unit>".
func (a Angle) String() string {
	return strconv.FormatFloat(a.Value, 'f', -1, 64) + " " + string(a.Unit)
}

// MarshalYAML implements yaml.Marshaler.
func (a Angle) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Scalar numbers are read as
// degrees, strings are parsed with ParseAngle.
func (a *Angle) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: angle must be a scalar", node.Line)
	}
	parsed, err := ParseAngle(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = parsed
	return nil
}
