// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public strided tensor API the vmap helpers
// run against.
//
// The package defines:
//   - Tensor[T, B]: generic typed tensor with view-based shape operations
//   - RawTensor: low-level strided representation sharing one buffer
//   - Backend: interface for device-specific shape operations
//   - Shape, DataType, Device: core type definitions
//   - WrapDim, MoveDimPerm, ViewStrides: index and stride arithmetic
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Arange[float32](tensor.Shape{2, 3, 4}, backend)
//	y := x.MoveDim(0, -1)          // Shape: [3, 4, 2], view
//	z := y.Reshape(tensor.Shape{12, 2}) // view when the strides allow it
package tensor

import (
	"github.com/born-ml/vmap/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DimError reports a dimension index out of range for a rank.
type DimError = tensor.DimError

// ErrInvalidDim is matched (errors.Is) by every DimError.
var ErrInvalidDim = tensor.ErrInvalidDim

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation.
//
// Shape operations return new tensors and never modify the receiver.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Arange[float32](tensor.Shape{2, 3}, backend) // [[0 1 2] [3 4 5]]
func Arange[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](shape, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Arange, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Index utilities

// WrapDim normalizes a possibly negative dim against rank.
//
// Example:
//
//	d, err := tensor.WrapDim(-1, 3) // 2, nil
//	_, err = tensor.WrapDim(3, 3)   // errors.Is(err, tensor.ErrInvalidDim)
func WrapDim(dim, rank int) (int, error) {
	return tensor.WrapDim(dim, rank)
}

// MoveDimPerm returns the permutation moving dim src to dst.
func MoveDimPerm(rank, src, dst int) []int {
	return tensor.MoveDimPerm(rank, src, dst)
}

// ViewStrides reports the strides letting newShape alias a tensor with the
// given shape and strides, or false when a copy is needed.
func ViewStrides(shape Shape, strides []int, newShape Shape) ([]int, bool) {
	return tensor.ViewStrides(shape, strides, newShape)
}
