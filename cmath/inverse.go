// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import "github.com/ajroetker/go-cmath/cmath/kernel"

var halfPi = Real(kernel.HalfPi)

// ArcSin returns the principal arcsine -i·Ln(i·z + Sqrt(1 - z²)).
func ArcSin(z Complex) (Complex, error) {
	w := I.Mul(z).Add(Sqrt(One.Sub(z.Mul(z))))
	l, err := Ln(w)
	if err != nil {
		return Complex{}, wrapOp("arcsin", z, err)
	}
	// -i·(x + iy) = y - ix
	return Complex{l.Im, -l.Re}, nil
}

// ArcCos returns π/2 - ArcSin(z).
func ArcCos(z Complex) (Complex, error) {
	s, err := ArcSin(z)
	if err != nil {
		return Complex{}, wrapOp("arccos", z, err)
	}
	return halfPi.Sub(s), nil
}

// ArcTan returns the principal arctangent.
//
// Real inputs use kernel.ArcTan. Complex inputs use
//
//	atan(z) = i/2·(Ln(1 - i·z) - Ln(1 + i·z))
//
// ArcTan(±i) returns an error wrapping ErrDomain.
func ArcTan(z Complex) (Complex, error) {
	if z.Im == 0 {
		return Real(kernel.ArcTan(z.Re)), nil
	}
	if z.Equal(I) || z.Equal(I.Neg()) {
		return Complex{}, wrapOp("arctan", z, ErrDomain)
	}

	iz := I.Mul(z)
	l1, err := Ln(One.Sub(iz))
	if err != nil {
		return Complex{}, wrapOp("arctan", z, err)
	}
	l2, err := Ln(One.Add(iz))
	if err != nil {
		return Complex{}, wrapOp("arctan", z, err)
	}
	d := l1.Sub(l2)
	// i/2·(x + iy) = -y/2 + i·x/2
	return Complex{-d.Im / 2, d.Re / 2}, nil
}

// ArcSec returns ArcCos(1/z).
func ArcSec(z Complex) (Complex, error) {
	r, err := One.Div(z)
	if err != nil {
		return Complex{}, wrapOp("arcsec", z, ErrDomain)
	}
	return ArcCos(r)
}

// ArcCsc returns ArcSin(1/z).
func ArcCsc(z Complex) (Complex, error) {
	r, err := One.Div(z)
	if err != nil {
		return Complex{}, wrapOp("arccsc", z, ErrDomain)
	}
	return ArcSin(r)
}

// ArcCot returns π/2 - ArcTan(z).
func ArcCot(z Complex) (Complex, error) {
	t, err := ArcTan(z)
	if err != nil {
		return Complex{}, wrapOp("arccot", z, err)
	}
	return halfPi.Sub(t), nil
}
