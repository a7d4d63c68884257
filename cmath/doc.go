// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

// Package cmath provides complex-number arithmetic and the complex
// extensions of the transcendental functions in package kernel.
//
// Every function is defined through a fixed identity on top of two real
// primitives, kernel.Exp and the table-driven kernel.Sin, so the whole
// family stays internally consistent:
//
//	Sin(a+bi)  = sin(a)cosh(b) + i·cos(a)sinh(b)
//	Cos(a+bi)  = cos(a)cosh(b) - i·sin(a)sinh(b)
//	Sinh(a+bi) = sinh(a)cos(b) + i·cosh(a)sin(b)
//	Ln(z)      = ln|z| + i·arg(z)
//	ArcSin(z)  = -i·Ln(i·z + Sqrt(1 - z²))
//
// A Complex with a zero imaginary part behaves exactly like the real kernel
// for every function.
//
// Functions whose result can be undefined (division, logarithm of zero,
// reciprocal functions at their poles, inverse functions at their branch
// points) return an error wrapping ErrDomain instead of a silent NaN.
//
// The reciprocal inverses (ArcSec, ArcCsc, ArcCot) and their hyperbolic
// counterparts compose a reciprocal with another inverse and carry the
// largest error of the package.
//
// Angles are always in radians. Use ParseUnit or Angle to convert degree
// inputs first:
//
//	z, err := cmath.Angle(cmath.Real(90), "deg")
//	if err != nil {
//		return err
//	}
//	s := cmath.Sin(z) // 1
//
// All functions are pure and safe for concurrent use.
package cmath
