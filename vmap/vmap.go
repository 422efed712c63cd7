// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vmap provides the batch-dimension helpers used by batching rules.
//
// # Overview
//
// Under vmap a tensor may carry an implicit batch dimension. These helpers:
//   - move the batch dim to the front (MoveBatchDimToFront)
//   - count logical dims and elements (RankWithoutBatchDim, NumelWithoutBatchDim)
//   - map logical dims to physical ones (GetPhysicalDim)
//   - pad logical ranks with size-1 dims (MaybePadToLogicalRank)
//   - fold and unfold dims (ReshapeDimInto, ReshapeDimOutOf)
//   - report in-place ops that cannot be batched (IncompatibleInplaceError)
//
// # Basic Usage
//
//	backend := cpu.New()
//	x := tensor.Arange[float32](tensor.Shape{3, 5, 4}, backend) // batch at dim 1
//
//	x, _ = vmap.MoveBatchDimToFront(x, vmap.BatchDimAt(1))      // [5, 3, 4]
//	dim, _ := vmap.GetPhysicalDim(x, true, -1)                  // 2
//	flat, _ := vmap.ReshapeDimInto(0, 0, x)                     // [15, 4]
//	back, _ := vmap.ReshapeDimOutOf(0, 5, flat)                 // [5, 3, 4]
//
// Any tensor type implementing Tensor can be used.
package vmap

import (
	"github.com/born-ml/vmap/internal/vmap"
	"github.com/born-ml/vmap/tensor"
)

// Tensor is the capability set the helpers need from a tensor type T.
// *tensor.Tensor[T, B] implements it for every element type and backend.
type Tensor[T any] interface {
	Shape() tensor.Shape
	NumElements() int
	View(shape tensor.Shape) T
	Reshape(shape tensor.Shape) T
	MoveDim(src, dst int) T
}

// BatchDim is an optional batch dimension index.
type BatchDim = vmap.BatchDim

// InplaceError reports an in-place op that cannot be vmapped.
type InplaceError = vmap.InplaceError

// NoBatchDim marks a tensor that is not vmapped over.
var NoBatchDim = vmap.NoBatchDim

// ErrIncompatibleInplace is matched (errors.Is) by every InplaceError.
var ErrIncompatibleInplace = vmap.ErrIncompatibleInplace

// BatchDimAt marks dim as the batch axis.
func BatchDimAt(dim int) BatchDim {
	return vmap.BatchDimAt(dim)
}

// FrontBatchDim returns BatchDimAt(0) if hasBatchDim, else NoBatchDim.
func FrontBatchDim(hasBatchDim bool) BatchDim {
	return vmap.FrontBatchDim(hasBatchDim)
}

// ValIfNonempty returns BatchDimAt(newDim) if src is present, else NoBatchDim.
func ValIfNonempty(src BatchDim, newDim int) BatchDim {
	return vmap.ValIfNonempty(src, newDim)
}

// MoveBatchDimToFront moves the batch dim of t to position 0.
// t is returned as is when bdim is absent or already 0.
func MoveBatchDimToFront[T Tensor[T]](t T, bdim BatchDim) (T, error) {
	return vmap.MoveBatchDimToFront(t, bdim)
}

// RankWithoutBatchDim returns the number of dims of t excluding the batch dim.
func RankWithoutBatchDim[T Tensor[T]](t T, bdim BatchDim) int {
	return vmap.RankWithoutBatchDim(t, bdim)
}

// NumelWithoutBatchDim returns the number of elements of one batch entry.
func NumelWithoutBatchDim[T Tensor[T]](t T, bdim BatchDim) int {
	return vmap.NumelWithoutBatchDim(t, bdim)
}

// GetPhysicalDim maps a logical dim to its physical index, assuming the
// batch dim, if any, is at position 0.
func GetPhysicalDim[T Tensor[T]](t T, hasBatchDim bool, logicalDim int) (int, error) {
	return vmap.GetPhysicalDim(t, hasBatchDim, logicalDim)
}

// MaybePadToLogicalRank inserts size-1 dims after the front batch dim until
// t has logicalRank logical dims.
func MaybePadToLogicalRank[T Tensor[T]](t T, bdim BatchDim, logicalRank int) T {
	return vmap.MaybePadToLogicalRank(t, bdim, logicalRank)
}

// ReshapeDimInto folds dim src into dim dst (indexed after removing src).
func ReshapeDimInto[T Tensor[T]](src, dst int, t T) (T, error) {
	return vmap.ReshapeDimInto(src, dst, t)
}

// ReshapeDimOutOf splits dim src into [size1, size/size1].
// Panics if size1 does not divide the dim.
func ReshapeDimOutOf[T Tensor[T]](src, size1 int, t T) (T, error) {
	return vmap.ReshapeDimOutOf(src, size1, t)
}

// IncompatibleInplaceError returns the error for an in-place op named op
// whose self is unbatched while another argument is batched.
func IncompatibleInplaceError(op string) error {
	return vmap.IncompatibleInplaceError(op)
}

// CheckInplaceBatching returns IncompatibleInplaceError(op) when self is
// unbatched and any of others is batched.
func CheckInplaceBatching(op string, self BatchDim, others ...BatchDim) error {
	return vmap.CheckInplaceBatching(op, self, others...)
}
