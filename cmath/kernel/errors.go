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
	"errors"
	"fmt"
)

var (
	// ErrDomain reports an undefined result, such as the logarithm of zero
	// or a division by zero.
	ErrDomain = errors.New("undefined result")

	// ErrInvalidArgument reports a caller error: an unknown unit, an empty
	// argument list or an invalid root order.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoConvergence reports an iteration that hit its cap before meeting
	// its tolerance.
	ErrNoConvergence = errors.New("no convergence")
)

// ConvergenceError describes a Newton-Raphson search that did not converge.
// It wraps ErrNoConvergence.
type ConvergenceError struct {
	Value      float64 // radicand
	Order      int     // root order
	Estimate   float64 // last estimate reached
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("root %d of %g: %v after %d iterations (last estimate %g)",
		e.Order, e.Value, ErrNoConvergence, e.Iterations, e.Estimate)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}
