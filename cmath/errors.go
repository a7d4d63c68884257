// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package cmath

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-cmath/cmath/kernel"
)

var (
	// ErrDomain reports an undefined result. It is the same value as
	// kernel.ErrDomain.
	ErrDomain = kernel.ErrDomain

	// ErrInvalidArgument reports a caller error such as an unknown unit.
	ErrInvalidArgument = kernel.ErrInvalidArgument

	// ErrNoConvergence reports a root search that hit its iteration cap.
	ErrNoConvergence = kernel.ErrNoConvergence

	// ErrNotReal reports a demotion of a value with a nonzero imaginary part.
	ErrNotReal = errors.New("value is not real")
)

// ConvergenceError is returned by root extraction that does not converge.
type ConvergenceError = kernel.ConvergenceError

// wrapOp adds the operation and its operand to err.
func wrapOp(op string, z Complex, err error) error {
	return fmt.Errorf("%s(%v): %w", op, z, err)
}
