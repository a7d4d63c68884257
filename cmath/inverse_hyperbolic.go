// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import stdmath "math"

// ArcSinh returns Ln(z + Sqrt(z² + 1)). Inputs with a negative real part
// use ArcSinh(-z) = -ArcSinh(z), which keeps the sum away from cancellation.
func ArcSinh(z Complex) (Complex, error) {
	if z.Re < 0 {
		s, err := ArcSinh(z.Neg())
		if err != nil {
			return Complex{}, err
		}
		return s.Neg(), nil
	}
	l, err := Ln(z.Add(Sqrt(z.Mul(z).Add(One))))
	if err != nil {
		return Complex{}, wrapOp("arcsinh", z, err)
	}
	return l, nil
}

// ArcCosh returns Ln(z + Sqrt(z + 1)·Sqrt(z - 1)), whose real part is
// non-negative on the whole plane.
func ArcCosh(z Complex) (Complex, error) {
	w := Sqrt(z.Add(One)).Mul(Sqrt(z.Sub(One)))
	l, err := Ln(z.Add(w))
	if err != nil {
		return Complex{}, wrapOp("arccosh", z, err)
	}
	return l, nil
}

// ArcTanh returns Ln((1 + z)/(1 - z))/2.
//
// Special cases:
//   - ArcTanh(0) = 0
//   - ArcTanh(1) = +Inf
//   - ArcTanh(-1) = -Inf
func ArcTanh(z Complex) (Complex, error) {
	switch {
	case z.Equal(Zero):
		return Zero, nil
	case z.Equal(One):
		return Real(stdmath.Inf(1)), nil
	case z.Equal(One.Neg()):
		return Real(stdmath.Inf(-1)), nil
	}
	q, err := One.Add(z).Div(One.Sub(z))
	if err != nil {
		return Complex{}, wrapOp("arctanh", z, err)
	}
	l, err := Ln(q)
	if err != nil {
		return Complex{}, wrapOp("arctanh", z, err)
	}
	return l.Scale(0.5), nil
}

// ArcSech returns Ln((1 + Sqrt(1 - z²))/z). ArcSech(0) fails with
// ErrDomain.
func ArcSech(z Complex) (Complex, error) {
	q, err := One.Add(Sqrt(One.Sub(z.Mul(z)))).Div(z)
	if err != nil {
		return Complex{}, wrapOp("arcsech", z, ErrDomain)
	}
	l, err := Ln(q)
	if err != nil {
		return Complex{}, wrapOp("arcsech", z, err)
	}
	return l, nil
}

// ArcCsch returns ArcSinh(1/z). ArcCsch(0) fails with ErrDomain.
func ArcCsch(z Complex) (Complex, error) {
	r, err := One.Div(z)
	if err != nil {
		return Complex{}, wrapOp("arccsch", z, ErrDomain)
	}
	return ArcSinh(r)
}

// ArcCoth returns Ln((z + 1)/(z - 1))/2. ArcCoth(±1) fails with ErrDomain.
func ArcCoth(z Complex) (Complex, error) {
	q, err := z.Add(One).Div(z.Sub(One))
	if err != nil {
		return Complex{}, wrapOp("arccoth", z, ErrDomain)
	}
	l, err := Ln(q)
	if err != nil {
		return Complex{}, wrapOp("arccoth", z, err)
	}
	return l.Scale(0.5), nil
}
