// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import (
	"fmt"
	stdmath "math"

	"github.com/ajroetker/go-cmath/cmath/kernel"
)

// maxSequentialPower is the largest integer exponent evaluated by repeated
// multiplication; larger exponents use binary exponentiation.
const maxSequentialPower = 1 << 16

// Power returns base^exp.
//
// Algorithm:
//   - exp == 0 returns 1 and exp == 1 returns base, exactly
//   - real integer exp: repeated multiplication (or division for negative
//     exp). Up to |exp| = 65536, Power(x, n) is bit-identical to n-fold
//     self-multiplication; larger exponents use binary exponentiation of
//     base (or 1/base), whose rounding differs in the last bits
//   - real non-integer exp: Exp(exp·Ln(base))
//   - complex exp c+di: base^c·(Cos(d·Ln(base)) + i·Sin(d·Ln(base)))
//
// Zero raised to a negative power returns an error wrapping ErrDomain.
func Power(base, exp Complex) (Complex, error) {
	switch {
	case exp.Equal(Zero):
		return One, nil
	case exp.Equal(One):
		return base, nil
	}

	if exp.Im == 0 {
		p := exp.Re
		if isInteger(p) {
			return intPower(base, int64(p))
		}
		if base.Equal(Zero) {
			if p > 0 {
				return Zero, nil
			}
			return Complex{}, fmt.Errorf("power 0^%g: %w", p, ErrDomain)
		}
		l, _ := Ln(base)
		return Exp(l.Scale(p)), nil
	}

	if base.Equal(Zero) {
		if exp.Re > 0 {
			return Zero, nil
		}
		return Complex{}, fmt.Errorf("power 0^(%v): %w", exp, ErrDomain)
	}

	z1, err := Power(base, Real(exp.Re))
	if err != nil {
		return Complex{}, err
	}
	l, _ := Ln(base)
	t := l.Scale(exp.Im)
	return z1.Mul(Cos(t).Add(I.Mul(Sin(t)))), nil
}

// isInteger reports whether p is an integer that fits in an int64.
func isInteger(p float64) bool {
	return p == stdmath.Trunc(p) && stdmath.Abs(p) < 1<<63
}

func intPower(base Complex, n int64) (Complex, error) {
	if n < 0 && base.Equal(Zero) {
		return Complex{}, fmt.Errorf("power 0^%d: %w", n, ErrDomain)
	}

	m := n
	if m < 0 {
		m = -m
	}

	if m > maxSequentialPower {
		if n > 0 {
			return binaryPower(base, m), nil
		}
		inv, err := One.Div(base)
		if err != nil {
			return Complex{}, err
		}
		return binaryPower(inv, m), nil
	}

	if n > 0 {
		p := base
		for i := int64(1); i < n; i++ {
			p = p.Mul(base)
		}
		return p, nil
	}

	p := One
	for i := int64(0); i < m; i++ {
		q, err := p.Div(base)
		if err != nil {
			return Complex{}, err
		}
		p = q
	}
	return p, nil
}

// binaryPower returns base^n for n > 0 by square-and-multiply.
func binaryPower(base Complex, n int64) Complex {
	p := One
	for n > 0 {
		if n&1 == 1 {
			p = p.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return p
}

// Root returns the n-th root of value.
//
// For a real value and a positive integer real n the root is found by
// Newton-Raphson (kernel.Root). Negative radicands give:
//   - odd n: the real root, -root(-value, n)
//   - n == 2: the imaginary root i·sqrt(-value)
//   - other even n: the principal root root(-value, n)·e^(iπ/n)
//
// Any other combination falls back to Power(value, 1/n). A zero order
// returns ErrInvalidArgument. Newton failures are returned as
// *ConvergenceError.
func Root(value, n Complex) (Complex, error) {
	if n.Equal(Zero) {
		return Complex{}, fmt.Errorf("root order 0: %w", ErrInvalidArgument)
	}

	if value.Im == 0 && n.Im == 0 && isInteger(n.Re) && n.Re >= 1 && n.Re <= stdmath.MaxInt32 {
		order := int(n.Re)
		v := value.Re
		if v >= 0 || order%2 == 1 {
			r, err := kernel.Root(v, order)
			if err != nil {
				return Complex{}, err
			}
			return Real(r), nil
		}

		r, err := kernel.Root(-v, order)
		if err != nil {
			return Complex{}, err
		}
		if order == 2 {
			return Complex{0, r}, nil
		}
		u, err := unitRootOfMinusOne(order)
		if err != nil {
			return Complex{}, err
		}
		return Round(u.Scale(r), kernel.RootDecimals), nil
	}

	inv, err := One.Div(n)
	if err != nil {
		return Complex{}, err
	}
	return Power(value, inv)
}

// unitRootOfMinusOne returns e^(iπ/n), the principal n-th root of -1.
//
// The table estimate (cos(π/n), sin(π/n)) is refined by Newton-Raphson on
// f(u) = u^n + 1:
//
//	u' = ((n-1)·u - 1/u^(n-1)) / n
func unitRootOfMinusOne(n int) (Complex, error) {
	u := FromPolar(1, kernel.Pi/float64(n))
	order := float64(n)

	residual := stdmath.Inf(1)
	i := 0
	for ; i < kernel.MaxNewtonIterations; i++ {
		p := binaryPower(u, int64(n-1))
		residual = p.Mul(u).Add(One).Magnitude()
		if residual <= kernel.NewtonTolerance {
			return u, nil
		}
		q, err := One.Div(p)
		if err != nil {
			break
		}
		next := u.Scale(order - 1).Sub(q).Scale(1 / order)
		if next.Equal(u) {
			break
		}
		u = next
	}
	if residual <= kernel.RootTolerance {
		return u, nil
	}
	return Complex{}, &ConvergenceError{Value: -1, Order: n, Estimate: u.Re, Iterations: i}
}

// Sqrt returns the principal square root of z.
//
// Negative reals give a pure imaginary result. Complex inputs use the
// half-angle formulas
//
//	Re = sqrt((|z| + a)/2), Im = sign(b)·sqrt((|z| - a)/2)
//
// where the smaller of the two is recovered as |b|/(2·larger) to avoid
// cancellation. Both components are rounded to kernel.RootDecimals places.
func Sqrt(z Complex) Complex {
	if z.Im == 0 {
		if z.Re < 0 {
			return Complex{0, kernel.Sqrt(-z.Re)}
		}
		return Real(kernel.Sqrt(z.Re))
	}
	if stdmath.IsInf(z.Im, 0) {
		return Complex{stdmath.Inf(1), z.Im}
	}

	m := z.Magnitude()
	var re, im float64
	if z.Re >= 0 {
		re = kernel.Sqrt((m + z.Re) / 2)
		im = z.Im / (2 * re)
	} else {
		im = stdmath.Copysign(kernel.Sqrt((m-z.Re)/2), z.Im)
		re = stdmath.Abs(z.Im) / (2 * stdmath.Abs(im))
	}
	return Round(Complex{re, im}, kernel.RootDecimals)
}
