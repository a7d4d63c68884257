// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import "fmt"

// Sum returns a + b[0] + b[1] + ...
func Sum(a Complex, b ...Complex) Complex {
	for _, w := range b {
		a = a.Add(w)
	}
	return a
}

// Subtract returns a - b[0] - b[1] - ...
func Subtract(a Complex, b ...Complex) Complex {
	for _, w := range b {
		a = a.Sub(w)
	}
	return a
}

// Multiply returns a · b[0] · b[1] · ...
func Multiply(a Complex, b ...Complex) Complex {
	for _, w := range b {
		a = a.Mul(w)
	}
	return a
}

// Divide returns a / b[0] / b[1] / ... and stops at the first zero divisor.
func Divide(a Complex, b ...Complex) (Complex, error) {
	for i, w := range b {
		q, err := a.Div(w)
		if err != nil {
			return Complex{}, fmt.Errorf("divisor %d: %w", i, err)
		}
		a = q
	}
	return a, nil
}

// Determinant returns the determinant of the 2x2 matrix [[a, b], [c, d]].
func Determinant(a, b, c, d Complex) Complex {
	return a.Mul(d).Sub(b.Mul(c))
}
