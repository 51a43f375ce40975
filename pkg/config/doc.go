// Package config implements the declarative configuration model for a
// multi-stage Chandra imaging analysis: observation reprocessing, ROI
// extraction, PSF simulation, and spectral extraction.
//
// # Overview
//
// A run is described once, in a YAML document, and constructed into a
// validated tree of sections. Construction is fail-fast and closed-schema:
// unknown keys, failed coercions, and broken invariants abort the whole
// tree with a ValidationError naming the offending field. A successful
// construction ends with a derivation pass that propagates run-wide choices
// downward: every per-source PSF section receives its position from the
// spectral extraction center, the ROI bin size, and the run simulator
// choice.
//
// After construction the tree is read-only. Rendering methods are pure
// functions of the tree plus runtime context supplied by the caller: a
// world-coordinate transform (units.WCS), an ObservationIndex, and a seeded
// RandomStream for the ray-trace parameters.
//
// # Components
//
// ChandraConfig: the root section, constructed with Read, FromYAML, or
// Default, serialized with ToYAML and Write.
//
// SchemaRegistry: CUE schemas for validating a raw parsed document before
// construction.
//
// Rendering: ToDMCopySelector, ToRegionSelector, ToEnergySelector,
// ToBackgroundSelector, RegionToGridSpec, CmdArgs, ToTraceArgs, and
// ToSourceParams produce the strings the external executor hands to the
// CIAO and SAOTrace tools.
//
// # Usage Example
//
//	cfg, err := config.Read("run.yaml")
//	if err != nil {
//	    log.Fatal().Err(err).Msg("invalid configuration")
//	}
//
//	selector := cfg.ROI.ToDMCopySelector(wcs)
//	args, err := cfg.SAOTrace.ToTraceArgs(obsIndex, 1, "pks-0637", config.DefaultStream)
package config
