package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestYAMLRoundTrip(t *testing.T) {
	doc := `
name: cygnus-deep
sub_name: run-3
obs_ids: [1093, 1094, 1095]
obs_id_ref: 1094
roi:
    width: 20 arcsec
    bin_size: 2.0
psf_simulator: saotrace
irfs:
    cyg-a:
        spectrum:
            radius: 2 arcsec
            energy_range:
                min: 0.3 keV
                max: 8 keV
        psf:
            pileup: true
    cyg-b:
        psf:
            numiter: 4
`
	cfg, err := FromYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg2, err := FromYAML(out)
	if err != nil {
		t.Fatalf("round-tripped document does not parse: %v\n%s", err, out)
	}
	if !reflect.DeepEqual(cfg, cfg2) {
		t.Errorf("round trip changed the configuration\nfirst:  %+v\nsecond: %+v", cfg, cfg2)
	}

	// Serialization is idempotent.
	out2, err := cfg2.ToYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != out2 {
		t.Errorf("serialization not idempotent:\n%s\n---\n%s", out, out2)
	}
}

func TestYAMLHidesInternalFields(t *testing.T) {
	out, err := Default().ToYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The roi document view is geometry only; the dmcopy flags live under
	// ciao.
	roiSection := out[strings.Index(out, "roi:"):strings.Index(out, "psf_simulator:")]
	for _, hidden := range []string{"kernel", "clobber", "verbose", "option"} {
		if strings.Contains(roiSection, hidden) {
			t.Errorf("roi section leaks internal field %q:\n%s", hidden, roiSection)
		}
	}
	if strings.Contains(out, "background_region_file") {
		t.Errorf("spectrum section leaks background_region_file")
	}

	// The psf view always carries the linked fields.
	for _, linked := range []string{"ra:", "dec:", "binsize:", "simulator:"} {
		if !strings.Contains(out, linked) {
			t.Errorf("psf section missing linked field %q", linked)
		}
	}
}

func TestYAMLPreservesSourceOrder(t *testing.T) {
	doc := `
irfs:
    zeta: {}
    alpha: {}
`
	cfg, err := FromYAML(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Index(out, "zeta:") > strings.Index(out, "alpha:") {
		t.Errorf("source order not preserved:\n%s", out)
	}
}

func TestWriteRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := []byte("sentinel\n")
	if err := os.WriteFile(path, original, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Default().Write(path, false)
	var ferr *FileExistsError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FileExistsError, got %v", err)
	}
	if ferr.Path != path {
		t.Errorf("path = %q, want %q", ferr.Path, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(original) {
		t.Error("existing file was modified")
	}
}

func TestWriteOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sentinel\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Default().Write(path, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("written file does not read back: %v", err)
	}
	if cfg.Name != "my-analysis" {
		t.Errorf("name = %q", cfg.Name)
	}
}

func TestWriteNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Default().Write(path, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file was not created: %v", err)
	}
}

func TestStringDisplay(t *testing.T) {
	s := Default().String()
	if !strings.HasPrefix(s, "ChandraConfig\n\n  ") {
		t.Errorf("unexpected display prefix: %q", s[:30])
	}
	if !strings.Contains(s, "  name: my-analysis") {
		t.Errorf("display body not indented:\n%s", s)
	}
}
