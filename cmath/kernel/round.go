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

// maxExact is 2^52; at and above this magnitude every float64 is an integer,
// so scaling for rounding can only lose information.
const maxExact = 1 << 52

// Round rounds x to n decimal places, halves away from zero.
func Round(x float64, n int) float64 {
	return scaled(x, n, stdmath.Round)
}

// Floor truncates x toward zero at n decimal places.
func Floor(x float64, n int) float64 {
	return scaled(x, n, stdmath.Trunc)
}

// Ceil rounds x away from zero at n decimal places. Values that are already
// integers (see IsInt) at that scale are returned unchanged.
func Ceil(x float64, n int) float64 {
	return scaled(x, n, func(v float64) float64 {
		if v == 0 || IsInt(v) {
			return stdmath.Round(v)
		}
		if v > 0 {
			return stdmath.Trunc(v) + 1
		}
		return stdmath.Trunc(v) - 1
	})
}

func scaled(x float64, n int, fn func(float64) float64) float64 {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return x
	}
	pow := IntPow(10, n)
	v := x * pow
	if stdmath.Abs(v) >= maxExact || stdmath.IsInf(v, 0) {
		return x
	}
	return fn(v) / pow
}

// IsInt reports whether x is within 1e-8 of an integer.
func IsInt(x float64) bool {
	if stdmath.IsNaN(x) || stdmath.IsInf(x, 0) {
		return false
	}
	return stdmath.Abs(x-stdmath.Round(x)) <= intTolerance
}

// Max returns the largest of values.
func Max(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("max of no values: %w", ErrInvalidArgument)
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Min returns the smallest of values.
func Min(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("min of no values: %w", ErrInvalidArgument)
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}
