// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/vmap/internal/backend/cpu"
	"github.com/born-ml/vmap/tensor"
)

// Backend represents the CPU backend implementation.
//
// Shape operations produce strided views of the input whenever the memory
// layout permits, and fall back to a row-major copy otherwise.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/vmap/backend/cpu"
//	    "github.com/born-ml/vmap/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Arange[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
