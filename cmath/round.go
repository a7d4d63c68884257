// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import "github.com/ajroetker/go-cmath/cmath/kernel"

// Round rounds both components of z to n decimal places.
func Round(z Complex, n int) Complex {
	return Complex{kernel.Round(z.Re, n), kernel.Round(z.Im, n)}
}

// Floor truncates both components of z toward zero at n decimal places.
func Floor(z Complex, n int) Complex {
	return Complex{kernel.Floor(z.Re, n), kernel.Floor(z.Im, n)}
}

// Ceil rounds both components of z away from zero at n decimal places.
func Ceil(z Complex, n int) Complex {
	return Complex{kernel.Ceil(z.Re, n), kernel.Ceil(z.Im, n)}
}
