package vmap

import (
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
	"github.com/pkg/errors"
)

// MoveBatchDimToFront moves the batch dim of t to position 0.
//
// Returns t itself when bdim is absent or already 0; otherwise a view with
// the batch axis first and every other axis in its original order.
func MoveBatchDimToFront[T Tensor[T]](t T, bdim BatchDim) (T, error) {
	dim, ok := bdim.Get()
	if !ok || dim == 0 {
		return t, nil
	}
	rank := len(t.Shape())
	if _, err := tensor.WrapDim(dim, rank); err != nil {
		return t, errors.WithMessagef(err, "moveBatchDimToFront(%v)", bdim)
	}
	return t.MoveDim(dim, 0), nil
}

// RankWithoutBatchDim returns the logical rank of t: its dimension count,
// minus one when bdim is present.
func RankWithoutBatchDim[T Tensor[T]](t T, bdim BatchDim) int {
	rank := len(t.Shape())
	if bdim.IsPresent() {
		rank--
	}
	return rank
}

// NumelWithoutBatchDim returns the element count of a single batch entry:
// the element count of t divided by the batch size when bdim is present.
//
// bdim must be in range for t; an out of range bdim panics.
func NumelWithoutBatchDim[T Tensor[T]](t T, bdim BatchDim) int {
	dim, ok := bdim.Get()
	if !ok {
		return t.NumElements()
	}
	return t.NumElements() / sizeAt(t.Shape(), dim)
}

// GetPhysicalDim maps a logical dim (negative counts from the end) to its
// index in the physical tensor, assuming the batch dim, if any, is at 0.
//
// Example:
//
//	// x has shape [B, 2, 3, 4] (logical rank 3)
//	GetPhysicalDim(x, true, -1) // 3
func GetPhysicalDim[T Tensor[T]](t T, hasBatchDim bool, logicalDim int) (int, error) {
	rank := RankWithoutBatchDim(t, FrontBatchDim(hasBatchDim))
	wrapped, err := tensor.WrapDim(logicalDim, rank)
	if err != nil {
		return 0, errors.WithMessage(err, "getPhysicalDim")
	}
	if hasBatchDim {
		return wrapped + 1, nil
	}
	return wrapped, nil
}

// MaybePadToLogicalRank inserts size-1 dims right after the front batch dim
// until the logical rank of t reaches logicalRank.
//
// t is returned unchanged when it is not batched or already has at least
// logicalRank logical dims. The result is a view; dims are never removed.
//
// Example:
//
//	// x has shape [B, 4]
//	MaybePadToLogicalRank(x, BatchDimAt(0), 3) // shape [B, 1, 1, 4]
func MaybePadToLogicalRank[T Tensor[T]](t T, bdim BatchDim, logicalRank int) T {
	if !bdim.IsPresent() {
		return t
	}
	current := RankWithoutBatchDim(t, bdim)
	if current >= logicalRank {
		return t
	}
	ones := make([]int, logicalRank-current)
	for i := range ones {
		ones[i] = 1
	}
	return t.View(t.Shape().Insert(1, ones...))
}

func sizeAt(shape tensor.Shape, dim int) int {
	d, err := tensor.WrapDim(dim, len(shape))
	if err != nil {
		panic(fmt.Sprintf("vmap: %v", err))
	}
	if len(shape) == 0 {
		return 1
	}
	return shape[d]
}
