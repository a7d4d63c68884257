package cmath

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares Complex values component-wise within a relative fraction
// or an absolute margin, whichever is larger.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(tol, tol)
}

func fromStd(c complex128) Complex {
	return Complex{real(c), imag(c)}
}

func TestArithmetic(t *testing.T) {
	a := New(3, 4)
	b := New(1, -2)

	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"add", a.Add(b), New(4, 2)},
		{"sub", a.Sub(b), New(2, 6)},
		{"neg", a.Neg(), New(-3, -4)},
		{"mul", a.Mul(b), New(11, -2)},
		{"scale", a.Scale(2), New(6, 8)},
		{"conj", a.Conj(), New(3, -4)},
		{"mul real", Real(3).Mul(Real(-2)), Real(-6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	got, err := New(11, -2).Div(New(1, -2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(New(3, 4)) {
		t.Errorf("(11-2i)/(1-2i) = %v, want 3+4i", got)
	}

	got, err = New(1, 1).Div(New(2, 0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fromStd(complex(1, 1) / complex(2, 0.5))
	if diff := cmp.Diff(want, got, approx(1e-14)); diff != "" {
		t.Errorf("(1+i)/(2+0.5i) mismatch (-want +got):\n%s", diff)
	}

	got, err = Real(5).Div(Real(stdmath.Inf(1)))
	if err != nil || !got.Equal(Zero) {
		t.Errorf("5/Inf = %v, %v; want 0, nil", got, err)
	}

	got, err = New(1e300, 1e300).Div(New(1e300, 1e300))
	if err != nil || !got.Equal(One) {
		t.Errorf("large/large = %v, %v; want 1, nil", got, err)
	}
}

func TestDivByZero(t *testing.T) {
	for _, z := range []Complex{One, New(3, 4), Zero} {
		if _, err := z.Div(Zero); !errors.Is(err, ErrDomain) {
			t.Errorf("%v / 0 error = %v, want ErrDomain", z, err)
		}
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		z    Complex
		want float64
	}{
		{New(3, 4), 5},
		{New(-3, 4), 5},
		{Real(-7), 7},
		{New(0, -2.5), 2.5},
		{Zero, 0},
		{New(5, 12), 13},
	}
	for _, tt := range tests {
		if got := tt.z.Magnitude(); stdmath.Abs(got-tt.want) > 1e-6*tt.want {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}

	if got := New(stdmath.Inf(-1), 1).Magnitude(); !stdmath.IsInf(got, 1) {
		t.Errorf("Magnitude(-Inf+i) = %v, want +Inf", got)
	}
	if got := New(stdmath.NaN(), 1).Magnitude(); !stdmath.IsNaN(got) {
		t.Errorf("Magnitude(NaN+i) = %v, want NaN", got)
	}
	if got := New(1e300, 1e300).Magnitude(); stdmath.Abs(got-stdmath.Sqrt2*1e300) > 1e-6*1e300 {
		t.Errorf("Magnitude(1e300+1e300i) = %v, want no overflow", got)
	}

	for re := -5.0; re <= 5; re += 0.5 {
		for im := -5.0; im <= 5; im += 0.5 {
			z := New(re, im)
			got := z.Magnitude()
			if got < 0 {
				t.Fatalf("Magnitude(%v) = %v, want >= 0", z, got)
			}
			if want := stdmath.Hypot(re, im); stdmath.Abs(got-want) > 2e-7*stdmath.Max(1, want) {
				t.Errorf("Magnitude(%v) = %v, want %v", z, got, want)
			}
		}
	}
}

func TestArg(t *testing.T) {
	tests := []struct {
		z    Complex
		want float64
	}{
		{One, 0},
		{I, stdmath.Pi / 2},
		{I.Neg(), -stdmath.Pi / 2},
		{Real(-1), stdmath.Pi},
		{New(1, 1), stdmath.Pi / 4},
		{New(-1, 1), 3 * stdmath.Pi / 4},
		{New(-1, -1), -3 * stdmath.Pi / 4},
		{New(2, -1), stdmath.Atan2(-1, 2)},
	}
	for _, tt := range tests {
		if got := tt.z.Arg(); stdmath.Abs(got-tt.want) > 1e-10 {
			t.Errorf("Arg(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}

	if got := Zero.Arg(); !stdmath.IsNaN(got) {
		t.Errorf("Arg(0) = %v, want NaN", got)
	}

	for re := -3.0; re <= 3; re += 0.25 {
		for im := -3.0; im <= 3; im += 0.25 {
			z := New(re, im)
			if z.Equal(Zero) {
				continue
			}
			if got := z.Arg(); got <= -stdmath.Pi || got > stdmath.Pi {
				t.Errorf("Arg(%v) = %v, outside (-π, π]", z, got)
			}
		}
	}
}

func TestPolar(t *testing.T) {
	r, theta := New(0, 2).Polar()
	if r != 2 || theta != stdmath.Pi/2 {
		t.Errorf("Polar(2i) = %v, %v; want 2, π/2", r, theta)
	}

	z := New(-1.5, 2.5)
	r, theta = z.Polar()
	if diff := cmp.Diff(z, FromPolar(r, theta), approx(5e-3)); diff != "" {
		t.Errorf("FromPolar(Polar(z)) mismatch (-want +got):\n%s", diff)
	}
}

func TestToReal(t *testing.T) {
	x, err := Real(2.5).ToReal()
	if err != nil || x != 2.5 {
		t.Errorf("Real(2.5).ToReal() = %v, %v; want 2.5, nil", x, err)
	}
	if _, err := New(1, 1).ToReal(); !errors.Is(err, ErrNotReal) {
		t.Errorf("(1+i).ToReal() error = %v, want ErrNotReal", err)
	}
}

func TestPredicates(t *testing.T) {
	if !Real(3).IsReal() || New(3, 1).IsReal() {
		t.Error("IsReal mismatch")
	}
	if !New(stdmath.NaN(), 0).IsNaN() || New(stdmath.NaN(), stdmath.Inf(1)).IsNaN() || One.IsNaN() {
		t.Error("IsNaN mismatch")
	}
	if !New(0, stdmath.Inf(-1)).IsInf() || One.IsInf() {
		t.Error("IsInf mismatch")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		z    Complex
		want string
	}{
		{New(3, 4), "3+4i"},
		{New(3, -4), "3-4i"},
		{New(1.5, -2), "1.5-2i"},
		{New(0, 4), "4i"},
		{New(0, -4), "-4i"},
		{Real(3), "3"},
		{Zero, "0"},
	}
	for _, tt := range tests {
		if got := tt.z.String(); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.z, got, tt.want)
		}
	}
}
