package config

// derive runs the construction-time propagation over a validated tree,
// top-down. It runs exactly once per construction and cannot fail: every
// step is a plain assignment between already-validated fields.
//
// Steps, in order:
//  1. each IRF section copies its spectral center (ICRS, degrees) into
//     psf.ra / psf.dec;
//  2. the run-wide ROI bin size overwrites every psf.binsize;
//  3. a run-wide saotrace simulator forces every psf.simulator to "file",
//     since saotrace rays reach simulate_psf through a ray file.
func derive(cfg *ChandraConfig) {
	for _, label := range cfg.IRFs.Labels() {
		irf, _ := cfg.IRFs.Get(label)
		irf.derive()

		irf.PSF.Binsize = cfg.ROI.BinSize
		if cfg.PSFSimulator == PSFSimulatorSAOTrace {
			irf.PSF.Simulator = PSFSimulatorFile
		}
	}
}
