// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import "github.com/ajroetker/go-cmath/cmath/kernel"

// Sinh returns sinh(a+bi) = sinh(a)cos(b) + i·cosh(a)sin(b).
func Sinh(z Complex) Complex {
	if z.Im == 0 {
		return Real(kernel.Sinh(z.Re))
	}
	return Complex{
		kernel.Sinh(z.Re) * kernel.Cos(z.Im),
		kernel.Cosh(z.Re) * kernel.Sin(z.Im),
	}
}

// Cosh returns cosh(a+bi) = cosh(a)cos(b) + i·sinh(a)sin(b).
func Cosh(z Complex) Complex {
	if z.Im == 0 {
		return Real(kernel.Cosh(z.Re))
	}
	return Complex{
		kernel.Cosh(z.Re) * kernel.Cos(z.Im),
		kernel.Sinh(z.Re) * kernel.Sin(z.Im),
	}
}

// Tanh returns Sinh(z)/Cosh(z). It fails with ErrDomain where Cosh(z) is
// zero, at z = i·(π/2 + kπ).
func Tanh(z Complex) (Complex, error) {
	if z.Im == 0 {
		return Real(kernel.Tanh(z.Re)), nil
	}
	t, err := Sinh(z).Div(Cosh(z))
	if err != nil {
		return Complex{}, wrapOp("tanh", z, ErrDomain)
	}
	return t, nil
}

// Sech returns 1/Cosh(z).
func Sech(z Complex) (Complex, error) {
	return reciprocal("sech", z, Cosh(z))
}

// Csch returns 1/Sinh(z).
func Csch(z Complex) (Complex, error) {
	return reciprocal("csch", z, Sinh(z))
}

// Coth returns Cosh(z)/Sinh(z).
func Coth(z Complex) (Complex, error) {
	c, err := Cosh(z).Div(Sinh(z))
	if err != nil {
		return Complex{}, wrapOp("coth", z, ErrDomain)
	}
	return c, nil
}
