package config

import "testing"

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{-2, "-2.0"},
		{500, "500.0"},
		{7000, "7000.0"},
		{0.5, "0.5"},
		{0.01, "0.01"},
		{10079.774, "10079.774"},
		{-75.3, "-75.3"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToCiaoName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"readout_streak", "readout-streak"},
		{"bkg_grouptype", "bkg-grouptype"},
		{"blur", "blur"},
	}
	for _, tt := range tests {
		if got := ToCiaoName(tt.in); got != tt.want {
			t.Errorf("ToCiaoName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDMCopyCmdArgs(t *testing.T) {
	got := DefaultDMCopyOptions().CmdArgs()
	want := "verbose=1 clobber=no kernel=default option=none"
	if got != want {
		t.Errorf("CmdArgs = %q, want %q", got, want)
	}
}

func TestReprojectEventsCmdArgs(t *testing.T) {
	got := DefaultReprojectEventsOptions().CmdArgs()
	want := "verbose=1 clobber=no aspect= random=-1 geompar=geom"
	if got != want {
		t.Errorf("CmdArgs = %q, want %q", got, want)
	}
}

func TestChandraReproCmdArgs(t *testing.T) {
	got := DefaultChandraReproOptions().CmdArgs()
	want := "verbose=1 clobber=no root= badpixel=yes process_events=yes" +
		" destreak=yes set_ardlib=yes check_vf_pha=no pix_adj=default" +
		" asol_update=yes pi_filter=yes cleanup=yes"
	if got != want {
		t.Errorf("CmdArgs = %q, want %q", got, want)
	}
}

func TestCmdArgsOptionalFields(t *testing.T) {
	opts := DefaultSimulatePSFOptions()
	args := structArgs(opts)

	byName := make(map[string]string)
	for _, arg := range args {
		for i := 0; i < len(arg); i++ {
			if arg[i] == '=' {
				byName[arg[:i]] = arg[i+1:]
				break
			}
		}
	}

	// Unset optionals render empty.
	for _, name := range []string{"monoenergy", "flux", "minsize", "numrays", "asolfile"} {
		if got, ok := byName[name]; !ok || got != "" {
			t.Errorf("%s = %q, want empty", name, got)
		}
	}

	mono := 1.7
	opts.Monoenergy = &mono
	numrays := 5000
	opts.Numrays = &numrays
	args = structArgs(opts)
	found := 0
	for _, arg := range args {
		if arg == "monoenergy=1.7" || arg == "numrays=5000" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("set optionals not rendered: %v", args)
	}
}

func TestRandomStream(t *testing.T) {
	a := NewRandomStream(DefaultSeed)
	b := NewRandomStream(DefaultSeed)

	for i := 0; i < 100; i++ {
		va := a.IntN(1, 2147483562)
		vb := b.IntN(1, 2147483562)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
		if va < 1 || va >= 2147483562 {
			t.Fatalf("draw %d out of range: %d", i, va)
		}
	}

	a.Reset(DefaultSeed)
	first := a.IntN(1, 2147483562)
	c := NewRandomStream(DefaultSeed)
	if first != c.IntN(1, 2147483562) {
		t.Error("Reset did not restart the sequence")
	}
}
