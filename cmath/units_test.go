package cmath

import (
	"errors"
	stdmath "math"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input string
		want  Unit
	}{
		{"rad", Radians},
		{"radians", Radians},
		{"deg", Degrees},
		{"degrees", Degrees},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.input)
		if err != nil {
			t.Errorf("ParseUnit(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, s := range []string{"", "grad", "Deg", "RAD", "degree"} {
		if _, err := ParseUnit(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseUnit(%q) error = %v, want ErrInvalidArgument", s, err)
		}
	}
}

func TestUnitString(t *testing.T) {
	if Radians.String() != "rad" || Degrees.String() != "deg" || Unit(7).String() != "Unit(7)" {
		t.Errorf("unexpected unit names %q %q %q", Radians, Degrees, Unit(7))
	}
}

func TestToRadians(t *testing.T) {
	if got := Degrees.ToRadians(Real(180)); stdmath.Abs(got.Re-stdmath.Pi) > 1e-15 || got.Im != 0 {
		t.Errorf("Degrees.ToRadians(180) = %v, want π", got)
	}
	z := New(1.25, -0.5)
	if got := Radians.ToRadians(z); !got.Equal(z) {
		t.Errorf("Radians.ToRadians(%v) = %v, want unchanged", z, got)
	}
}

func TestAngleSin(t *testing.T) {
	for _, x := range []float64{-2, 0.3, 1, 4.5} {
		z, err := Angle(Real(x), "rad")
		if err != nil {
			t.Fatalf("Angle(%v, rad) unexpected error: %v", x, err)
		}
		if got, want := Sin(z), Sin(Real(x)); !got.Equal(want) {
			t.Errorf("Sin(%v rad) = %v, want %v", x, got, want)
		}
	}

	z, err := Angle(Real(90), "deg")
	if err != nil {
		t.Fatalf("Angle(90, deg) unexpected error: %v", err)
	}
	if got := Sin(z); stdmath.Abs(got.Re-1) > 1e-4 || got.Im != 0 {
		t.Errorf("Sin(90 deg) = %v, want 1", got)
	}

	if _, err := Angle(Real(90), "turns"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Angle(90, turns) error = %v, want ErrInvalidArgument", err)
	}
}
