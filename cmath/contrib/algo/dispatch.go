// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

package algo

import (
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// linesPerBatch is how many cache lines of output one pooled batch covers.
const linesPerBatch = 64

// cacheLineSize is the size of a cache line on this CPU architecture.
const cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// noParallel is read once at package initialization.
var noParallel = NoParallelEnv()

// NoParallelEnv reports whether CMATH_NO_PARALLEL asks the parallel
// transforms to stay on the calling goroutine. Unset or empty means no.
// Boolean spellings ("1", "false", "T", ...) are honored as written; any
// other value, such as "yes", still disables the pool.
func NoParallelEnv() bool {
	val, ok := os.LookupEnv("CMATH_NO_PARALLEL")
	if !ok || val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// batchSize returns the number of elements of elemSize bytes that fill
// linesPerBatch cache lines. Batches start on multiples of this size, so two
// workers write to a shared line only when the slice itself is unaligned.
func batchSize(elemSize uintptr) int {
	n := linesPerBatch * cacheLineSize / int(elemSize)
	return max(n, 1)
}
