package units

import (
	"math"
	"testing"
)

func TestParseEnergy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Energy
		wantErr bool
	}{
		{
			name:  "keV",
			input: "0.5 keV",
			want:  Energy{Value: 0.5, Unit: KiloElectronVolt},
		},
		{
			name:  "eV",
			input: "500 eV",
			want:  Energy{Value: 500, Unit: ElectronVolt},
		},
		{
			name:  "bare number is keV",
			input: "7",
			want:  Energy{Value: 7, Unit: KiloElectronVolt},
		},
		{
			name:    "unknown unit",
			input:   "3 J",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "spectral",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnergy(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEnergyToValue(t *testing.T) {
	e := NewEnergy(0.5, KiloElectronVolt)

	if got := e.ToValue(ElectronVolt); got != 500 {
		t.Errorf("0.5 keV = %v eV, want 500", got)
	}
	if got := e.ToValue(KiloElectronVolt); got != 0.5 {
		t.Errorf("0.5 keV = %v keV, want 0.5", got)
	}
	if got := NewEnergy(2, MegaElectronVolt).ToValue(KiloElectronVolt); math.Abs(got-2000) > 1e-9 {
		t.Errorf("2 MeV = %v keV, want 2000", got)
	}
}

func TestEnergyString(t *testing.T) {
	if got := NewEnergy(0.5, KiloElectronVolt).String(); got != "0.5 keV" {
		t.Errorf("got %q, want %q", got, "0.5 keV")
	}
}
