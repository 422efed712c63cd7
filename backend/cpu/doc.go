// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor shape operations.
//
// # Overview
//
// The backend keeps tensors strided:
//   - Transpose and MoveDim only permute strides (no copy)
//   - View inserts, drops or merges dims without copying when strides allow
//   - Reshape falls back to a row-major copy when a view is impossible
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/vmap/backend/cpu"
//	    "github.com/born-ml/vmap/tensor"
//	    "github.com/born-ml/vmap/vmap"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Arange[float32](tensor.Shape{2, 3, 4}, backend)
//	    y, err := vmap.ReshapeDimInto(0, 1, x) // Shape: [3, 8]
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Views share read-only
// buffers; no operation writes to an input.
package cpu
