package kernel

import (
	"errors"
	stdmath "math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(float64, int) float64
		input  float64
		places int
		want   float64
	}{
		{"round(3.14159, 2)", Round, 3.14159, 2, 3.14},
		{"round(2.5, 0)", Round, 2.5, 0, 3},
		{"round(-2.5, 0)", Round, -2.5, 0, -3},
		{"round(1.23456789, 7)", Round, 1.23456789, 7, 1.2345679},
		{"floor(3.789, 1)", Floor, 3.789, 1, 3.7},
		{"floor(-3.789, 1)", Floor, -3.789, 1, -3.7},
		{"floor(7, 0)", Floor, 7, 0, 7},
		{"ceil(3.21, 1)", Ceil, 3.21, 1, 3.3},
		{"ceil(-3.21, 1)", Ceil, -3.21, 1, -3.3},
		{"ceil(4, 0)", Ceil, 4, 0, 4},
		{"ceil(2.000000001, 0)", Ceil, 2.000000001, 0, 2},
		{"ceil(0, 3)", Ceil, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input, tt.places); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundLargeValues(t *testing.T) {
	for _, x := range []float64{1e300, -1e300, stdmath.Inf(1)} {
		if got := Round(x, 2); got != x {
			t.Errorf("Round(%v, 2) = %v, want unchanged", x, got)
		}
	}
	if got := Round(stdmath.NaN(), 2); !stdmath.IsNaN(got) {
		t.Errorf("Round(NaN, 2) = %v, want NaN", got)
	}
}

func TestIsInt(t *testing.T) {
	tests := []struct {
		input float64
		want  bool
	}{
		{3, true},
		{-4, true},
		{3.000000001, true},
		{2.9999999999, true},
		{3.01, false},
		{0.5, false},
		{stdmath.NaN(), false},
		{stdmath.Inf(1), false},
	}
	for _, tt := range tests {
		if got := IsInt(tt.input); got != tt.want {
			t.Errorf("IsInt(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMaxMin(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantMax float64
		wantMin float64
	}{
		{"mixed", []float64{3, 1, -2}, 3, -2},
		{"all negative", []float64{-5, -3, -9}, -3, -9},
		{"all positive", []float64{4, 8, 6}, 8, 4},
		{"single", []float64{7}, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMax, err := Max(tt.values...)
			if err != nil {
				t.Fatalf("Max unexpected error: %v", err)
			}
			gotMin, err := Min(tt.values...)
			if err != nil {
				t.Fatalf("Min unexpected error: %v", err)
			}
			if gotMax != tt.wantMax || gotMin != tt.wantMin {
				t.Errorf("Max, Min = %v, %v, want %v, %v", gotMax, gotMin, tt.wantMax, tt.wantMin)
			}
		})
	}

	if _, err := Max(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Max() error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Min(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Min() error = %v, want ErrInvalidArgument", err)
	}
}
