// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import (
	stdmath "math"

	"github.com/ajroetker/go-cmath/cmath/kernel"
)

// Sin returns sin(a+bi) = sin(a)cosh(b) + i·cos(a)sinh(b).
func Sin(z Complex) Complex {
	if z.Im == 0 {
		return Real(kernel.Sin(z.Re))
	}
	return Complex{
		kernel.Sin(z.Re) * kernel.Cosh(z.Im),
		kernel.Cos(z.Re) * kernel.Sinh(z.Im),
	}
}

// Cos returns cos(a+bi) = cos(a)cosh(b) - i·sin(a)sinh(b).
func Cos(z Complex) Complex {
	if z.Im == 0 {
		return Real(kernel.Cos(z.Re))
	}
	return Complex{
		kernel.Cos(z.Re) * kernel.Cosh(z.Im),
		-kernel.Sin(z.Re) * kernel.Sinh(z.Im),
	}
}

// Tan returns tan(a+bi). With t = tan(a) and h = tanh(b):
//
//	tan(a+bi) = (t - t·h² + i·(h + t²·h)) / (1 + t²·h²)
//
// At a real pole (t = ±Inf) the limit 0 + i/h is returned.
func Tan(z Complex) Complex {
	if z.Im == 0 {
		return Real(kernel.Tan(z.Re))
	}
	t := kernel.Tan(z.Re)
	h := kernel.Tanh(z.Im)
	if stdmath.IsInf(t, 0) {
		return Complex{0, 1 / h}
	}
	d := 1 + t*t*h*h
	return Complex{(t - t*h*h) / d, (h + t*t*h) / d}
}

// Sec returns 1/Cos(z).
func Sec(z Complex) (Complex, error) {
	return reciprocal("sec", z, Cos(z))
}

// Csc returns 1/Sin(z).
func Csc(z Complex) (Complex, error) {
	return reciprocal("csc", z, Sin(z))
}

// Cot returns 1/Tan(z). Cot is zero at the poles of Tan.
func Cot(z Complex) (Complex, error) {
	return reciprocal("cot", z, Tan(z))
}

func reciprocal(op string, z, w Complex) (Complex, error) {
	r, err := One.Div(w)
	if err != nil {
		return Complex{}, wrapOp(op, z, ErrDomain)
	}
	return r, nil
}
