// Copyright 2025 go-cmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel

import stdmath "math"

// ArcTan computes atan(x) with a direct polynomial.
//
// Algorithm:
//  1. Odd symmetry: atan(-x) = -atan(x)
//  2. Reflection: for x > 1, atan(x) = π/2 - atan(1/x)
//  3. For x > tan(π/8), atan(x) = π/4 + atan((x-1)/(x+1))
//  4. Odd Taylor polynomial through t²³ on |t| <= tan(π/8)
//
// The error is below 1e-10 over the whole real line. Arg uses this function,
// so every complex logarithm inherits its accuracy.
//
// Special cases:
//   - ArcTan(±0) = ±0
//   - ArcTan(±Inf) = ±π/2
//   - ArcTan(NaN) = NaN
func ArcTan(x float64) float64 {
	switch {
	case x == 0 || stdmath.IsNaN(x):
		return x
	case x < 0:
		return -ArcTan(-x)
	case x > 1:
		return HalfPi - ArcTan(1/x)
	case x > atanTanPiOver8_f64:
		return atanPiOver4_f64 + atanPoly((x-1)/(x+1))
	}
	return atanPoly(x)
}

func atanPoly(t float64) float64 {
	t2 := t * t
	p := atanC11_f64
	p = p*t2 + atanC10_f64
	p = p*t2 + atanC9_f64
	p = p*t2 + atanC8_f64
	p = p*t2 + atanC7_f64
	p = p*t2 + atanC6_f64
	p = p*t2 + atanC5_f64
	p = p*t2 + atanC4_f64
	p = p*t2 + atanC3_f64
	p = p*t2 + atanC2_f64
	p = p*t2 + atanC1_f64
	p = p*t2 + 1
	return t * p
}

// ArcTanFast computes atan(x) ≈ x*(π/4 + 0.273*(1-x)) on [0, 1], extended by
// reflection for x > 1 and negation for x < 0. The maximum error is about
// 4e-3 radians.
func ArcTanFast(x float64) float64 {
	switch {
	case x == 0 || stdmath.IsNaN(x):
		return x
	case x < 0:
		return -ArcTanFast(-x)
	case x > 1:
		return HalfPi - ArcTanFast(1/x)
	}
	return x * (atanPiOver4_f64 + atanFastK_f64*(1-x))
}
