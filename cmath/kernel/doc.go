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

// Package kernel provides the real-valued primitives the complex layer is
// built on: constants, sampled lookup tables, argument reduction and the
// transcendental approximations themselves.
//
// No transcendental function from the standard library is used. The
// standard math package is only used for bit-level helpers (Frexp, Ldexp,
// Floor, Abs, NaN/Inf construction and checks).
//
// # Functions
//
// Trigonometric (lookup-table interpolation over 101 nodes):
//   - Sin(x), Cos(x), Tan(x)
//   - ReduceTau(x), ReduceHalfPi(x)
//
// Exponential and logarithmic (Taylor series with reduction by powers of 2):
//   - Exp(x), Ln(x), IntPow(x, n)
//   - Sinh(x), Cosh(x), Tanh(x)
//
// Roots (Newton-Raphson with an iteration cap):
//   - RootNewton(value, n, estimate), Root(value, n), Sqrt(x)
//
// Inverse tangent:
//   - ArcTan(x), ArcTanFast(x)
//
// # Accuracy
//
// The kernel targets a bounded relative error rather than machine epsilon:
//   - Sin/Cos: linear interpolation error below 5e-4
//   - Exp/Ln: below 1e-6 away from the short-circuit points
//   - Roots: rounded to 7 decimal places after range reduction
//
// Every function is a pure function of its arguments and the read-only
// tables, so all of them are safe for concurrent use.
package kernel
