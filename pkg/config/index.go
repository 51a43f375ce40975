package config

// ObservationIndex is the runtime context for one observation's rendering
// paths: pointing metadata and the per-source file locations the executor
// laid out. It is supplied fresh per render; nothing here is part of the
// validated document.
type ObservationIndex struct {
	// ObsID is the observation identifier.
	ObsID int

	// RaPnt, DecPnt, RollPnt are the pointing angles in degrees.
	RaPnt   float64
	DecPnt  float64
	RollPnt float64

	// ReproAsolFile is the reprocessed aspect-solution file.
	ReproAsolFile string

	// TStart is the exposure start time in seconds.
	TStart float64

	// Limit is the ray-trace exposure limit.
	Limit float64

	// SpectrumFiles maps source label to the RDB spectrum file for that
	// source.
	SpectrumFiles map[string]string

	// SAOTraceDirs maps source label to the per-source ray-trace output
	// directory.
	SAOTraceDirs map[string]string
}
