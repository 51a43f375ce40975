package units

import "math"

// Frame identifies a celestial reference frame.
type Frame string

const (
	// FrameICRS is the International Celestial Reference System.
	FrameICRS Frame = "icrs"

	// FrameFK5 is the FK5 J2000 frame. At the precision handled here it is
	// treated as coincident with ICRS.
	FrameFK5 Frame = "fk5"

	// FrameGalactic is the IAU 1958 galactic coordinate frame.
	FrameGalactic Frame = "galactic"
)

// SkyCoord is a position on the sky: a longitude/latitude pair in a
// reference frame.
type SkyCoord struct {
	Frame Frame
	Lon   Angle
	Lat   Angle
}

// NewSkyCoord returns a coordinate in the given frame.
func NewSkyCoord(lon, lat Angle, frame Frame) SkyCoord {
	return SkyCoord{Frame: frame, Lon: lon, Lat: lat}
}

// galToICRS is the rotation matrix from galactic to equatorial (ICRS)
// cartesian coordinates, the transpose of the Hipparcos ICRS->galactic
// matrix.
var galToICRS = [3][3]float64{
	{-0.0548755604162154, 0.4941094278755837, -0.8676661490190047},
	{-0.8734370902348850, -0.4448296299600112, -0.1980763734312015},
	{-0.4838350155487132, 0.7469822444972189, 0.4559837761750669},
}

// ICRS returns the coordinate expressed in the ICRS frame with longitude and
// latitude in decimal degrees.
func (c SkyCoord) ICRS() SkyCoord {
	switch c.Frame {
	case FrameGalactic:
		ra, dec := rotate(galToICRS, c.Lon.Degrees(), c.Lat.Degrees())
		return SkyCoord{
			Frame: FrameICRS,
			Lon:   NewAngle(ra, Degree),
			Lat:   NewAngle(dec, Degree),
		}
	default:
		return SkyCoord{
			Frame: FrameICRS,
			Lon:   NewAngle(c.Lon.Degrees(), Degree),
			Lat:   NewAngle(c.Lat.Degrees(), Degree),
		}
	}
}

// RA returns the ICRS right ascension in degrees.
func (c SkyCoord) RA() float64 {
	return c.ICRS().Lon.Value
}

// Dec returns the ICRS declination in degrees.
func (c SkyCoord) Dec() float64 {
	return c.ICRS().Lat.Value
}

// rotate applies a rotation matrix to a unit vector built from spherical
// angles (degrees in, degrees out).
func rotate(m [3][3]float64, lon, lat float64) (float64, float64) {
	lonRad := lon * math.Pi / 180
	latRad := lat * math.Pi / 180

	x := math.Cos(latRad) * math.Cos(lonRad)
	y := math.Cos(latRad) * math.Sin(lonRad)
	z := math.Sin(latRad)

	xr := m[0][0]*x + m[0][1]*y + m[0][2]*z
	yr := m[1][0]*x + m[1][1]*y + m[1][2]*z
	zr := m[2][0]*x + m[2][1]*y + m[2][2]*z

	outLon := math.Atan2(yr, xr) * 180 / math.Pi
	if outLon < 0 {
		outLon += 360
	}
	outLat := math.Asin(math.Max(-1, math.Min(1, zr))) * 180 / math.Pi
	return outLon, outLat
}
