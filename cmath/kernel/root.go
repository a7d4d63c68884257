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

import (
	"fmt"
	stdmath "math"
)

// RootNewton finds the n-th root of value by Newton-Raphson iteration
// starting from estimate:
//
//	e' = (value/e^(n-1) + (n-1)*e) / n
//
// The estimate is accepted once |e^n - value| <= NewtonTolerance*|value|,
// or once the iteration stalls at float64 resolution with a residual of at
// most RootTolerance*max(1, |value|). The accepted estimate is rounded to
// RootDecimals places.
//
// At most MaxNewtonIterations steps are taken. A search that runs out of
// steps, or whose estimate becomes zero or non-finite, returns a
// *ConvergenceError.
func RootNewton(value float64, n int, estimate float64) (float64, error) {
	switch {
	case n < 1:
		return 0, fmt.Errorf("root order %d: %w", n, ErrInvalidArgument)
	case stdmath.IsNaN(value):
		return value, nil
	case value < 0 && n%2 == 0:
		return 0, fmt.Errorf("even root %d of %g: %w", n, value, ErrDomain)
	case value == 0:
		return 0, nil
	case n == 1:
		return value, nil
	case stdmath.IsInf(value, 0):
		return value, nil
	}

	order := float64(n)
	i := 0
	for ; i < MaxNewtonIterations; i++ {
		p := IntPow(estimate, n)
		residual := stdmath.Abs(p - value)
		if residual <= NewtonTolerance*stdmath.Abs(value) {
			return Round(estimate, RootDecimals), nil
		}

		next := (value/(p/estimate) + (order-1)*estimate) / order
		if next == 0 || stdmath.IsNaN(next) || stdmath.IsInf(next, 0) {
			break
		}
		if next == estimate {
			if residual <= RootTolerance*stdmath.Max(1, stdmath.Abs(value)) {
				return Round(estimate, RootDecimals), nil
			}
			break
		}
		estimate = next
	}

	return 0, &ConvergenceError{Value: value, Order: n, Estimate: estimate, Iterations: i}
}

// Root computes the real n-th root of value for n >= 1. Negative values are
// accepted for odd n only.
//
// The radicand is reduced to value = m * 2^(n*k) with m in [0.5, 2^n), so
// the root is RootNewton(m) * 2^k. The seed 1 + (m-1)/n lies above the root
// (Bernoulli's inequality), making the iteration monotone.
func Root(value float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("root order %d: %w", n, ErrInvalidArgument)
	}
	if value < 0 {
		if n%2 == 0 {
			return 0, fmt.Errorf("even root %d of %g: %w", n, value, ErrDomain)
		}
		r, err := Root(-value, n)
		return -r, err
	}
	if value == 0 || n == 1 || stdmath.IsNaN(value) || stdmath.IsInf(value, 0) {
		return value, nil
	}

	frac, exp := stdmath.Frexp(value)
	k := floorDiv(exp, n)
	m := stdmath.Ldexp(frac, exp-k*n)

	seed := min(1+(m-1)/float64(n), 2)
	r, err := RootNewton(m, n, seed)
	if err != nil {
		return 0, err
	}
	return stdmath.Ldexp(r, k), nil
}

// Sqrt computes the square root of x >= 0 by Newton-Raphson on a mantissa
// reduced to [1, 4). Negative inputs return NaN; the complex layer maps them
// to pure imaginary values before reaching here.
//
// Special cases:
//   - Sqrt(+Inf) = +Inf
//   - Sqrt(±0) = 0
//   - Sqrt(x < 0) = NaN
//   - Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	switch {
	case stdmath.IsNaN(x) || x < 0:
		return stdmath.NaN()
	case x == 0:
		return 0
	case stdmath.IsInf(x, 1):
		return x
	}

	frac, exp := stdmath.Frexp(x)
	m := frac * 2
	exp--
	if exp%2 != 0 {
		m *= 2
		exp--
	}

	r, err := RootNewton(m, 2, 1+(m-1)/2)
	if err != nil {
		return stdmath.NaN()
	}
	return stdmath.Ldexp(r, exp/2)
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
