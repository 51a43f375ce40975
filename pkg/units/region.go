package units

import "math"

// WCS is a world-coordinate transform for one image: it maps sky positions
// onto pixel coordinates. Callers construct a WCS per observation and supply
// it fresh to every conversion; nothing here caches transforms.
type WCS interface {
	// ToPixel maps a sky coordinate to a pixel position.
	ToPixel(c SkyCoord) (x, y float64)

	// PixelScale reports the angular size of one pixel.
	PixelScale() Angle
}

// LinearWCS is a small-field linear transform around a reference position.
// The longitude axis is compressed by cos(dec) of the reference point.
type LinearWCS struct {
	Ref   SkyCoord
	RefX  float64
	RefY  float64
	Scale Angle
}

// ToPixel implements WCS.
func (w LinearWCS) ToPixel(c SkyCoord) (x, y float64) {
	ref := w.Ref.ICRS()
	icrs := c.ICRS()
	scale := w.Scale.Degrees()
	cosDec := math.Cos(ref.Lat.Degrees() * math.Pi / 180)

	x = w.RefX + (icrs.Lon.Degrees()-ref.Lon.Degrees())*cosDec/scale
	y = w.RefY + (icrs.Lat.Degrees()-ref.Lat.Degrees())/scale
	return x, y
}

// PixelScale implements WCS.
func (w LinearWCS) PixelScale() Angle {
	return w.Scale
}

// PixelCircle is a circle in pixel coordinates.
type PixelCircle struct {
	X      float64
	Y      float64
	Radius float64
}

// BoundingBox is an integer pixel bounding box. Bounds follow the usual
// region convention: ixmin = floor(xmin + 0.5), ixmax = ceil(xmax + 0.5),
// so the box covers every pixel whose center falls inside the shape.
type BoundingBox struct {
	IXMin int
	IXMax int
	IYMin int
	IYMax int
}

// Width returns the box extent along x in pixels.
func (b BoundingBox) Width() int {
	return b.IXMax - b.IXMin
}

// Height returns the box extent along y in pixels.
func (b BoundingBox) Height() int {
	return b.IYMax - b.IYMin
}

func boundingBoxFromFloat(xmin, xmax, ymin, ymax float64) BoundingBox {
	return BoundingBox{
		IXMin: int(math.Floor(xmin + 0.5)),
		IXMax: int(math.Ceil(xmax + 0.5)),
		IYMin: int(math.Floor(ymin + 0.5)),
		IYMax: int(math.Ceil(ymax + 0.5)),
	}
}

// CircleRegion is a circular sky region.
type CircleRegion struct {
	Center SkyCoord
	Radius Angle
}

// ToPixel converts the region to pixel coordinates under the transform.
func (r CircleRegion) ToPixel(wcs WCS) PixelCircle {
	x, y := wcs.ToPixel(r.Center)
	return PixelCircle{
		X:      x,
		Y:      y,
		Radius: r.Radius.Degrees() / wcs.PixelScale().Degrees(),
	}
}

// BoundingBox returns the integer pixel bounding box of the circle.
func (r CircleRegion) BoundingBox(wcs WCS) BoundingBox {
	c := r.ToPixel(wcs)
	return boundingBoxFromFloat(c.X-c.Radius, c.X+c.Radius, c.Y-c.Radius, c.Y+c.Radius)
}

// RectRegion is a rectangular sky region aligned with the pixel axes.
type RectRegion struct {
	Center SkyCoord
	Width  Angle
	Height Angle
}

// PixelRect is a rectangle in pixel coordinates.
type PixelRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ToPixel converts the region to pixel coordinates under the transform.
func (r RectRegion) ToPixel(wcs WCS) PixelRect {
	x, y := wcs.ToPixel(r.Center)
	scale := wcs.PixelScale().Degrees()
	return PixelRect{
		X:      x,
		Y:      y,
		Width:  r.Width.Degrees() / scale,
		Height: r.Height.Degrees() / scale,
	}
}

// BoundingBox returns the integer pixel bounding box of the rectangle.
func (r RectRegion) BoundingBox(wcs WCS) BoundingBox {
	p := r.ToPixel(wcs)
	return boundingBoxFromFloat(
		p.X-p.Width/2, p.X+p.Width/2,
		p.Y-p.Height/2, p.Y+p.Height/2,
	)
}
