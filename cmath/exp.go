// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import (
	"fmt"

	"github.com/ajroetker/go-cmath/cmath/kernel"
)

// Exp returns e^z = e^a·(cos b + i·sin b).
func Exp(z Complex) Complex {
	if z.Im == 0 {
		return Real(kernel.Exp(z.Re))
	}
	m := kernel.Exp(z.Re)
	return Complex{m * kernel.Cos(z.Im), m * kernel.Sin(z.Im)}
}

// Ln returns the principal natural logarithm ln|z| + i·arg(z).
//
// Ln(0) returns an error wrapping ErrDomain. Positive reals take the real
// kernel directly.
func Ln(z Complex) (Complex, error) {
	switch {
	case z.Re == 0 && z.Im == 0:
		return Complex{}, wrapOp("ln", z, ErrDomain)
	case z.Im == 0 && z.Re > 0:
		return Real(kernel.Ln(z.Re)), nil
	}
	return Complex{kernel.Ln(z.Magnitude()), z.Arg()}, nil
}

// Log10 returns the base-10 logarithm of z.
func Log10(z Complex) (Complex, error) {
	l, err := Ln(z)
	if err != nil {
		return Complex{}, err
	}
	return l.Scale(1 / kernel.Ln10), nil
}

// Log2 returns the base-2 logarithm of z.
func Log2(z Complex) (Complex, error) {
	l, err := Ln(z)
	if err != nil {
		return Complex{}, err
	}
	return l.Scale(1 / kernel.Ln2), nil
}

// Log returns the logarithm of z in the given base, Ln(z)/Ln(base). A base
// of one (or zero) has no logarithm and returns ErrDomain.
func Log(z, base Complex) (Complex, error) {
	if base.Equal(One) {
		return Complex{}, fmt.Errorf("log base %v: %w", base, ErrDomain)
	}
	lz, err := Ln(z)
	if err != nil {
		return Complex{}, err
	}
	lb, err := Ln(base)
	if err != nil {
		return Complex{}, fmt.Errorf("log base: %w", err)
	}
	q, err := lz.Div(lb)
	if err != nil {
		return Complex{}, fmt.Errorf("log base %v: %w", base, err)
	}
	return q, nil
}
