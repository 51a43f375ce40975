package config

import (
	"errors"
	"testing"

	"github.com/chandrakit/chandrakit/pkg/units"
)

// testWCS maps the default sky position to pixel (100, 100) at one arcsec
// per pixel.
func testWCS() units.LinearWCS {
	return units.LinearWCS{
		Ref:   DefaultSkyPosition().SkyCoord(),
		RefX:  100,
		RefY:  100,
		Scale: units.NewAngle(1, units.Arcsec),
	}
}

func TestToDMCopySelector(t *testing.T) {
	roi := DefaultROIConfig()

	got := roi.ToDMCopySelector(testWCS())
	want := "[EVENTS][bin x=98:103:1.0, y=98:103:1.0][energy=500.0:7000.0]"
	if got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}
}

func TestToDMCopySelectorCustomBand(t *testing.T) {
	roi := DefaultROIConfig()
	roi.BinSize = 0.5
	roi.EnergyRange = EnergyRange{
		Min: units.NewEnergy(300, units.ElectronVolt),
		Max: units.NewEnergy(2, units.KiloElectronVolt),
	}

	got := roi.ToDMCopySelector(testWCS())
	want := "[EVENTS][bin x=98:103:0.5, y=98:103:0.5][energy=300.0:2000.0]"
	if got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}
}

func TestRegionToGridSpec(t *testing.T) {
	roi := DefaultROIConfig()
	wcs := testWCS()

	tests := []struct {
		name    string
		binSize float64
		want    string
	}{
		{"unit bin", 1.0, "98:103:#5,98:103:#5"},
		{"partial trailing cell dropped", 2.0, "98:103:#2,98:103:#2"},
		{"sub-pixel bin", 0.5, "98:103:#10,98:103:#10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegionToGridSpec(roi.Region(), wcs, tt.binSize)
			if got != tt.want {
				t.Errorf("grid spec = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToRegionSelector(t *testing.T) {
	spec := DefaultPerSourceSpecExtractConfig()

	got := spec.ToRegionSelector(testWCS())
	want := "[sky=circle(100.0,100.0,3.0)]"
	if got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}
}

func TestToEnergySelector(t *testing.T) {
	spec := DefaultPerSourceSpecExtractConfig()

	if got, want := spec.ToEnergySelector(), "0.5:7.0:0.01"; got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}

	spec.EnergyRange.Max = units.NewEnergy(8000, units.ElectronVolt)
	spec.EnergyStep = 0.02
	if got, want := spec.ToEnergySelector(), "0.5:8.0:0.02"; got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}
}

func TestToBackgroundSelector(t *testing.T) {
	spec := DefaultPerSourceSpecExtractConfig()

	_, err := spec.ToBackgroundSelector()
	var merr *MissingReferenceError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MissingReferenceError, got %v", err)
	}
	if merr.Field != "background_region_file" {
		t.Errorf("field = %q", merr.Field)
	}

	spec.BackgroundRegionFile = "bkg.reg"
	got, err := spec.ToBackgroundSelector()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "[(x,y)=region(bkg.reg)]"; got != want {
		t.Errorf("selector = %q, want %q", got, want)
	}
}

func TestPSFRenderArgsAlwaysIncludeLinkedFields(t *testing.T) {
	irf := DefaultIRFConfig()
	irf.PSF.Binsize = 2.0
	irf.PSF.Simulator = PSFSimulatorFile

	args := irf.PSF.RenderArgs()
	if len(args) != 10 {
		t.Fatalf("got %d args, want 10: %v", len(args), args)
	}

	want := map[string]string{
		"pileup":         "no",
		"readout_streak": "no",
		"extended":       "yes",
		"minsize":        "",
		"numiter":        "1",
		"blur":           "0.25",
		"binsize":        "2.0",
		"simulator":      "file",
	}
	got := make(map[string]string)
	for _, arg := range args {
		for i := 0; i < len(arg); i++ {
			if arg[i] == '=' {
				got[arg[:i]] = arg[i+1:]
				break
			}
		}
	}
	for name, value := range want {
		if got[name] != value {
			t.Errorf("%s = %q, want %q", name, got[name], value)
		}
	}
	// The linked position is always rendered, even before derivation set it.
	for _, name := range []string{"ra", "dec"} {
		if _, ok := got[name]; !ok {
			t.Errorf("missing linked field %s", name)
		}
	}
}
