package units

import (
	"math"
	"testing"
)

func TestParseAngle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Angle
		wantErr bool
	}{
		{
			name:  "value with unit",
			input: "5 arcsec",
			want:  Angle{Value: 5, Unit: Arcsec},
		},
		{
			name:  "decimal degrees",
			input: "1.5 deg",
			want:  Angle{Value: 1.5, Unit: Degree},
		},
		{
			name:  "bare number is degrees",
			input: "12.25",
			want:  Angle{Value: 12.25, Unit: Degree},
		},
		{
			name:    "unknown unit",
			input:   "3 parsec",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not an angle",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAngle(tt.input)
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

func TestParseAngleSexagesimal(t *testing.T) {
	got, err := ParseAngle("06h35m46.5079301472s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Unit != Degree {
		t.Fatalf("expected degrees, got %s", got.Unit)
	}
	want := (6 + 35/60.0 + 46.5079301472/3600.0) * 15
	if math.Abs(got.Value-want) > 1e-9 {
		t.Errorf("got %v deg, want %v deg", got.Value, want)
	}

	got, err = ParseAngle("-75d16m16.816418256s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = -(75 + 16/60.0 + 16.816418256/3600.0)
	if math.Abs(got.Value-want) > 1e-9 {
		t.Errorf("got %v deg, want %v deg", got.Value, want)
	}
}

func TestAngleConversions(t *testing.T) {
	a := NewAngle(5, Arcsec)

	if got := a.Degrees(); math.Abs(got-5.0/3600) > 1e-15 {
		t.Errorf("Degrees() = %v, want %v", got, 5.0/3600)
	}
	if got := a.To(Arcmin); math.Abs(got.Value-5.0/60) > 1e-15 {
		t.Errorf("To(arcmin) = %v, want %v", got.Value, 5.0/60)
	}
	if got := NewAngle(1, HourAngle).Degrees(); got != 15 {
		t.Errorf("1 hourangle = %v deg, want 15", got)
	}
}

func TestAngleStringRoundTrip(t *testing.T) {
	for _, a := range []Angle{
		NewAngle(5, Arcsec),
		NewAngle(0.25, Degree),
		NewAngle(98.94379228394665, Degree),
	} {
		parsed, err := ParseAngle(a.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", a.String(), err)
		}
		if parsed != a {
			t.Errorf("round trip changed %+v to %+v", a, parsed)
		}
	}
}

func TestAngleStringPreservesUnit(t *testing.T) {
	if got := NewAngle(5, Arcsec).String(); got != "5 arcsec" {
		t.Errorf("got %q, want %q", got, "5 arcsec")
	}
}
