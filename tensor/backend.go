// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/vmap/internal/tensor"

// Backend defines the shape operations all compute backends implement.
//
// Implementations:
//   - backend/cpu: strided views with copy fallback
//
// Example:
//
//	import (
//	    "github.com/born-ml/vmap/tensor"
//	    "github.com/born-ml/vmap/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Arange[float32](tensor.Shape{2, 3}, backend)
//	y := x.Transpose()  // Uses backend.Transpose under the hood
type Backend interface {
	Reshape(t *RawTensor, newShape Shape) *RawTensor // View when possible, else copy.
	View(t *RawTensor, newShape Shape) *RawTensor    // Zero-copy view, panics if impossible.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Permute dimensions (view).
	Contiguous(t *RawTensor) *RawTensor              // Row-major copy when needed.

	// Metadata.
	Name() string   // Backend name.
	Device() Device // Compute device.
}

// Compile-time check that the public and internal interfaces match.
var _ tensor.Backend = Backend(nil)
