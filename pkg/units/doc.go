// Package units provides the angular, energy, and sky-coordinate quantities
// used throughout the configuration model, together with the region and
// world-coordinate-system types that turn angular regions into pixel-space
// shapes.
//
// Quantities keep the unit they were declared in: an angle read as
// "5 arcsec" formats and serializes as arcseconds, while conversions
// (Degrees, ToValue) are available for rendering paths that need a fixed
// unit. Sexagesimal angle strings ("06h35m46.5s", "-75d16m16.8s")
// canonicalize to decimal degrees on parse.
//
// The WCS interface is the boundary to real coordinate machinery: callers
// that own a proper tangent-plane solution implement it; LinearWCS ships as
// a small-field approximation adequate for tests and sub-arcminute windows.
package units
