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

// ReduceTau maps x into [0, τ) using the exact floating-point remainder of
// x by τ.
//
// The reduction is closed-form, so it takes constant time for any finite x.
// Precision degrades for |x| beyond ~1e15 where τ spacing exceeds the ulp.
func ReduceTau(x float64) float64 {
	if x >= 0 && x < Tau {
		return x
	}
	r := stdmath.Mod(x, Tau)
	if r < 0 {
		r += Tau
	}
	if r >= Tau {
		r = 0
	}
	return r
}

// ReduceHalfPi maps x into (-π/2, π/2] using the π periodicity of tangent.
// Values already inside [-π/2, π/2] are returned unchanged, so both poles
// keep their sign.
func ReduceHalfPi(x float64) float64 {
	if x >= -HalfPi && x <= HalfPi {
		return x
	}
	r := stdmath.Mod(x, Pi)
	if r > HalfPi {
		r -= Pi
	}
	if r <= -HalfPi {
		r += Pi
	}
	return r
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(alpha float64) float64 { return alpha * Pi / 180 }

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(alpha float64) float64 { return alpha * 180 / Pi }

// Sin computes sin(x) by interpolating the sine table.
//
// Algorithm:
//  1. Reduce x into [0, τ)
//  2. Binary search for the smallest node >= x
//  3. Return the node sample if it is within SnapTolerance, otherwise
//     interpolate linearly between the bracketing samples
//
// Special cases:
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	return sineTable.lookup(ReduceTau(x))
}

// Cos computes cos(x) = sin(π/2 - x) from the shared sine table.
func Cos(x float64) float64 {
	return Sin(HalfPi - x)
}

// Tan computes tan(x) by interpolating the tangent table over [-π/2, π/2].
//
// The tangent table samples tan directly rather than dividing Sin by Cos,
// since the quotient amplifies interpolation error near the poles. Any
// result whose magnitude reaches InfThreshold is reported as a signed
// infinity.
//
// Special cases:
//   - Tan(±π/2) = ±Inf
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan(x float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return stdmath.NaN()
	}
	return checkInf(tangentTable.lookup(ReduceHalfPi(x)))
}

func checkInf(v float64) float64 {
	switch {
	case v >= InfThreshold:
		return stdmath.Inf(1)
	case v <= -InfThreshold:
		return stdmath.Inf(-1)
	}
	return v
}
