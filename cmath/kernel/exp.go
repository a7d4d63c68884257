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

// Exp computes e^x.
//
// Algorithm:
//  1. Short-circuit x within ShortCircuitTolerance of 0, ln2 and 1
//  2. Range reduction: x = a + k*ln(2), k = floor(x/ln(2)), a in [0, ln2)
//  3. Taylor polynomial: e^a ≈ 1 + a + a²/2! + ... + a⁷/7!
//  4. Reconstruction: e^x = e^a * 2^k with IntPow
//
// Special cases:
//   - Exp(+Inf) = +Inf, and any x above the overflow threshold
//   - Exp(-Inf) = 0, and any x below the underflow threshold
//   - Exp(NaN) = NaN
func Exp(x float64) float64 {
	switch {
	case stdmath.IsNaN(x):
		return x
	case x > expOverflow_f64:
		return stdmath.Inf(1)
	case x < expUnderflow_f64:
		return 0
	case stdmath.Abs(x) <= ShortCircuitTolerance:
		return 1
	case stdmath.Abs(x-Ln2) <= ShortCircuitTolerance:
		return 2
	case stdmath.Abs(x-1) <= ShortCircuitTolerance:
		return E
	}

	k := stdmath.Floor(x / Ln2)
	a := x - k*Ln2

	// Horner: 1 + a*(c1 + a*(c2 + ... + a*c7))
	p := expC7_f64
	p = p*a + expC6_f64
	p = p*a + expC5_f64
	p = p*a + expC4_f64
	p = p*a + expC3_f64
	p = p*a + expC2_f64
	p = p*a + expC1_f64
	p = p*a + 1

	return p * IntPow(2, int(k))
}

// IntPow computes x^n by repeated multiplication (n > 0) or repeated
// division (n < 0). The result for n > 0 is bit-identical to multiplying x
// by itself n times in sequence.
func IntPow(x float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	}
	if n > 0 {
		p := x
		for i := 1; i < n; i++ {
			p *= x
		}
		return p
	}
	p := 1.0
	for i := 0; i < -n; i++ {
		p /= x
	}
	return p
}

// Ln computes the natural logarithm of x.
//
// Algorithm:
//  1. Short-circuit x within ShortCircuitTolerance of 1, 2, e and 10
//  2. Range reduction: halve while x > 1.33, double while x < 0.665,
//     counting n so that x = m * 2^n
//  3. a = (m-1)/(m+1), ln(m) = 2*(a + a³/3 + ... + a¹³/13)
//  4. ln(x) = ln(m) + n*ln(2)
//
// The reduction loops are bounded by the float64 exponent range.
//
// Special cases:
//   - Ln(0) = NaN
//   - Ln(x < 0) = NaN
//   - Ln(+Inf) = +Inf
//   - Ln(NaN) = NaN
func Ln(x float64) float64 {
	switch {
	case stdmath.IsNaN(x) || x <= 0:
		return stdmath.NaN()
	case stdmath.IsInf(x, 1):
		return x
	case stdmath.Abs(x-1) <= ShortCircuitTolerance:
		return 0
	case stdmath.Abs(x-2) <= ShortCircuitTolerance:
		return Ln2
	case stdmath.Abs(x-E) <= ShortCircuitTolerance:
		return 1
	case stdmath.Abs(x-10) <= ShortCircuitTolerance:
		return Ln10
	}

	n := 0
	for x > logUpper_f64 {
		x /= 2
		n++
	}
	for x < logLower_f64 {
		x *= 2
		n--
	}

	a := (x - 1) / (x + 1)
	a2 := a * a

	poly := logC7_f64
	poly = poly*a2 + logC6_f64
	poly = poly*a2 + logC5_f64
	poly = poly*a2 + logC4_f64
	poly = poly*a2 + logC3_f64
	poly = poly*a2 + logC2_f64
	poly = poly*a2 + logC1_f64

	return 2*a*poly + float64(n)*Ln2
}

// Sinh computes sinh(x) = (e^x - e^(-x)) / 2. Below |x| = 0.5 it sums the
// odd Taylor series instead, so tiny arguments keep sinh(x) ≈ x rather than
// collapsing to the zero that Exp's short-circuit at 0 would produce.
func Sinh(x float64) float64 {
	if stdmath.Abs(x) < sinhSeriesBound_f64 {
		x2 := x * x
		p := sinhC9_f64
		p = p*x2 + sinhC7_f64
		p = p*x2 + sinhC5_f64
		p = p*x2 + sinhC3_f64
		return x + x*x2*p
	}
	return (Exp(x) - Exp(-x)) / 2
}

// Cosh computes cosh(x) = (e^x + e^(-x)) / 2.
func Cosh(x float64) float64 {
	return (Exp(x) + Exp(-x)) / 2
}

// Tanh computes tanh(x) = sinh(x) / cosh(x), saturating to ±1 for |x| > 19
// where the quotient is 1 to float64 precision.
func Tanh(x float64) float64 {
	switch {
	case stdmath.IsNaN(x):
		return x
	case x > tanhClamp_f64:
		return 1
	case x < -tanhClamp_f64:
		return -1
	}
	if stdmath.Abs(x) < sinhSeriesBound_f64 {
		return Sinh(x) / Cosh(x)
	}
	ep, en := Exp(x), Exp(-x)
	return (ep - en) / (ep + en)
}
