package config

// DMCopyOption selects what dmcopy carries over beyond the filtered block.
type DMCopyOption string

const (
	DMCopyOptionAll   DMCopyOption = "all"
	DMCopyOptionImage DMCopyOption = "image"
	DMCopyOptionBare  DMCopyOption = "bare"
	DMCopyOptionNone  DMCopyOption = "none"
)

// PixAdj selects the chandra_repro pixel adjustment algorithm.
type PixAdj string

const (
	PixAdjEDSER   PixAdj = "edser"
	PixAdjDefault PixAdj = "default"
)

// PSFSimulator selects how simulate_psf obtains rays.
type PSFSimulator string

const (
	PSFSimulatorMarx     PSFSimulator = "marx"
	PSFSimulatorSAOTrace PSFSimulator = "saotrace"

	// PSFSimulatorFile consumes a pre-computed ray file instead of running a
	// simulator. Forced onto every per-source PSF section when the run-wide
	// simulator is saotrace.
	PSFSimulatorFile PSFSimulator = "file"
)

// GroupType selects the specextract spectral grouping scheme.
type GroupType string

const (
	GroupTypeNumCounts GroupType = "NUM_CTS"
	GroupTypeNone      GroupType = "NONE"
)
