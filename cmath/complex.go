// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import (
	"fmt"
	stdmath "math"
	"strconv"

	"github.com/ajroetker/go-cmath/cmath/kernel"
)

// Complex is a complex number Re + Im·i. It is a value type: every method
// returns a new value and never modifies its receiver.
type Complex struct {
	Re float64
	Im float64
}

var (
	// I is the imaginary unit.
	I = Complex{0, 1}

	Zero = Complex{}
	One  = Complex{1, 0}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re, im}
}

// Real promotes x to a complex value with a zero imaginary part.
func Real(x float64) Complex {
	return Complex{Re: x}
}

// FromPolar returns r·(cos θ + i·sin θ).
func FromPolar(r, theta float64) Complex {
	return Complex{r * kernel.Cos(theta), r * kernel.Sin(theta)}
}

// ToReal demotes z to a real number. It returns ErrNotReal when the
// imaginary part is nonzero; the imaginary part is never dropped silently.
func (z Complex) ToReal() (float64, error) {
	if z.Im != 0 {
		return 0, fmt.Errorf("%v: %w", z, ErrNotReal)
	}
	return z.Re, nil
}

func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re + w.Re, z.Im + w.Im}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re - w.Re, z.Im - w.Im}
}

func (z Complex) Neg() Complex {
	return Complex{-z.Re, -z.Im}
}

// Mul returns z·w. The product of two real values is the real product, so
// infinities never leak a NaN into the imaginary part.
func (z Complex) Mul(w Complex) Complex {
	if z.Im == 0 && w.Im == 0 {
		return Complex{Re: z.Re * w.Re}
	}
	return Complex{
		z.Re*w.Re - z.Im*w.Im,
		z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z/w.
//
// Division by a zero value returns an error wrapping ErrDomain. Division of
// a finite value by an infinite one returns Zero. Otherwise Smith's
// algorithm is used, which avoids the overflow of |w|² for large w.
func (z Complex) Div(w Complex) (Complex, error) {
	switch {
	case w.Re == 0 && w.Im == 0:
		return Complex{}, fmt.Errorf("divide %v by zero: %w", z, ErrDomain)
	case w.IsInf() && !z.IsInf() && !z.IsNaN():
		return Zero, nil
	case z.Im == 0 && w.Im == 0:
		return Complex{Re: z.Re / w.Re}, nil
	}

	if stdmath.Abs(w.Re) >= stdmath.Abs(w.Im) {
		r := w.Im / w.Re
		d := w.Re + w.Im*r
		return Complex{(z.Re + z.Im*r) / d, (z.Im - z.Re*r) / d}, nil
	}
	r := w.Re / w.Im
	d := w.Re*r + w.Im
	return Complex{(z.Re*r + z.Im) / d, (z.Im*r - z.Re) / d}, nil
}

// Scale returns z·f for a real f.
func (z Complex) Scale(f float64) Complex {
	return Complex{z.Re * f, z.Im * f}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{z.Re, -z.Im}
}

// Equal reports whether z and w have identical components.
func (z Complex) Equal(w Complex) bool {
	return z.Re == w.Re && z.Im == w.Im
}

// IsReal reports whether the imaginary part of z is zero.
func (z Complex) IsReal() bool {
	return z.Im == 0
}

// IsNaN reports whether either component of z is NaN and neither is
// infinite.
func (z Complex) IsNaN() bool {
	if z.IsInf() {
		return false
	}
	return stdmath.IsNaN(z.Re) || stdmath.IsNaN(z.Im)
}

// IsInf reports whether either component of z is infinite.
func (z Complex) IsInf() bool {
	return stdmath.IsInf(z.Re, 0) || stdmath.IsInf(z.Im, 0)
}

// Magnitude returns |z| = sqrt(Re² + Im²), computed as a·sqrt(1 + (b/a)²)
// with a the larger component so the squares cannot overflow.
//
// Special cases:
//   - Magnitude(±Inf + bi) = Magnitude(a ± Inf·i) = +Inf
//   - Magnitude(NaN) = NaN
//   - Magnitude(0) = 0
func (z Complex) Magnitude() float64 {
	a, b := stdmath.Abs(z.Re), stdmath.Abs(z.Im)
	switch {
	case stdmath.IsInf(a, 1) || stdmath.IsInf(b, 1):
		return stdmath.Inf(1)
	case stdmath.IsNaN(a) || stdmath.IsNaN(b):
		return stdmath.NaN()
	}
	if a < b {
		a, b = b, a
	}
	if a == 0 {
		return 0
	}
	if b == 0 {
		return a
	}
	q := b / a
	return a * kernel.Sqrt(1+q*q)
}

// Arg returns the argument of z in (-π, π]. Arg(0) is NaN.
func (z Complex) Arg() float64 {
	if z.Re == 0 {
		switch {
		case z.Im > 0:
			return kernel.HalfPi
		case z.Im < 0:
			return -kernel.HalfPi
		}
		return stdmath.NaN()
	}

	t := kernel.ArcTan(z.Im / z.Re)
	switch {
	case z.Re > 0:
		return t
	case z.Im == 0:
		return kernel.Pi
	case z.Im > 0:
		return t + kernel.Pi
	}
	return t - kernel.Pi
}

// Polar returns the magnitude and argument of z.
func (z Complex) Polar() (r, theta float64) {
	return z.Magnitude(), z.Arg()
}

// String formats z as "a+bi", "a-bi", "bi" or "a".
func (z Complex) String() string {
	re := strconv.FormatFloat(z.Re, 'g', -1, 64)
	im := strconv.FormatFloat(stdmath.Abs(z.Im), 'g', -1, 64)
	switch {
	case z.Im == 0:
		return re
	case z.Re == 0 && z.Im > 0:
		return im + "i"
	case z.Re == 0:
		return "-" + im + "i"
	case z.Im < 0:
		return re + "-" + im + "i"
	}
	return re + "+" + im + "i"
}
