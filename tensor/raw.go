// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/vmap/internal/tensor"
)

// RawTensor is the low-level strided tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), Strides(), DType(), Device()
//   - Zero-copy views via ViewAs() and Permute()
//   - Row-major materialization via Contiguous()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	t, _ := raw.Permute(1, 0)  // Shape [3, 2], shares raw's buffer
//	c := t.Contiguous()        // Row-major copy
type RawTensor = tensor.RawTensor
