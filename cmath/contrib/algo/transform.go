// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package algo

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-cmath/cmath"
	"github.com/ajroetker/go-cmath/cmath/contrib/workerpool"
)

type (
	// Func is an infallible operation on a single complex value.
	Func func(cmath.Complex) cmath.Complex

	// ErrFunc is an operation on a single complex value that can fail.
	ErrFunc func(cmath.Complex) (cmath.Complex, error)

	// RealFunc is an operation on a single real value.
	RealFunc func(float64) float64
)

// Transform stores fn(input[i]) in output[i].
//
// Example usage:
//
//	Transform(input, output, func(z cmath.Complex) cmath.Complex { return z.Mul(z) })
func Transform(input, output []cmath.Complex, fn Func) {
	n := min(len(input), len(output))
	for i := range n {
		output[i] = fn(input[i])
	}
}

// TransformErr stores fn(input[i]) in output[i], stopping at the first
// error. The error names the failing index and wraps fn's error.
func TransformErr(input, output []cmath.Complex, fn ErrFunc) error {
	return transformRange(input, output, fn, 0, min(len(input), len(output)))
}

func transformRange(input, output []cmath.Complex, fn ErrFunc, start, end int) error {
	for i := start; i < end; i++ {
		w, err := fn(input[i])
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		output[i] = w
	}
	return nil
}

// TransformReal applies a real kernel function to any float slice,
// evaluating in float64.
//
//	TransformReal(in32, out32, kernel.Sin)
func TransformReal[T constraints.Float](input, output []T, fn RealFunc) {
	n := min(len(input), len(output))
	for i := range n {
		output[i] = T(fn(float64(input[i])))
	}
}

// SinTransform applies cmath.Sin to each element.
func SinTransform(input, output []cmath.Complex) {
	Transform(input, output, cmath.Sin)
}

// CosTransform applies cmath.Cos to each element.
func CosTransform(input, output []cmath.Complex) {
	Transform(input, output, cmath.Cos)
}

// ExpTransform applies cmath.Exp to each element.
func ExpTransform(input, output []cmath.Complex) {
	Transform(input, output, cmath.Exp)
}

// SqrtTransform applies cmath.Sqrt to each element.
func SqrtTransform(input, output []cmath.Complex) {
	Transform(input, output, cmath.Sqrt)
}

// LnTransform applies cmath.Ln to each element. It fails on the first zero.
func LnTransform(input, output []cmath.Complex) error {
	return TransformErr(input, output, cmath.Ln)
}

// ParallelTransform is Transform spread over pool in cache-line sized
// batches. A nil pool, or CMATH_NO_PARALLEL, runs it sequentially.
func ParallelTransform(pool *workerpool.Pool, input, output []cmath.Complex, fn Func) {
	n := min(len(input), len(output))
	if pool == nil || noParallel {
		Transform(input[:n], output[:n], fn)
		return
	}
	pool.ParallelForBatched(n, batchSize(unsafe.Sizeof(cmath.Complex{})), func(start, end int) {
		Transform(input[start:end], output[start:end], fn)
	})
}

// ParallelTransformErr is TransformErr spread over pool. Which error is
// reported when several elements fail depends on scheduling; elements after
// a failure may be left unwritten.
func ParallelTransformErr(pool *workerpool.Pool, input, output []cmath.Complex, fn ErrFunc) error {
	n := min(len(input), len(output))
	if pool == nil || noParallel {
		return transformRange(input, output, fn, 0, n)
	}
	return pool.ParallelForErr(n, batchSize(unsafe.Sizeof(cmath.Complex{})), func(start, end int) error {
		return transformRange(input, output, fn, start, end)
	})
}
