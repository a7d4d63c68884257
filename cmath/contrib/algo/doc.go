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

// Package algo applies cmath functions to whole slices, either on the
// calling goroutine or spread over a workerpool.Pool.
//
// # Transform API
//
// Generic transforms:
//   - Transform(input, output []cmath.Complex, fn)
//   - TransformErr(input, output []cmath.Complex, fn) error
//   - TransformReal[T constraints.Float](input, output []T, fn)
//   - ParallelTransform, ParallelTransformErr: the same over a pool
//
// Named transforms for common functions:
//   - SinTransform, CosTransform, ExpTransform, SqrtTransform
//   - LnTransform (returns an error, since Ln(0) is undefined)
//
// Only min(len(input), len(output)) elements are processed.
//
// # Example Usage
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	out := make([]cmath.Complex, len(in))
//	if err := algo.ParallelTransformErr(pool, in, out, cmath.Ln); err != nil {
//	    return err
//	}
//
// # Environment
//
// Setting CMATH_NO_PARALLEL to a true value (or any value strconv.ParseBool
// does not understand) makes the parallel transforms run sequentially.
package algo
