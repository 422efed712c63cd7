package vmap

import (
	"github.com/born-ml/vmap/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// ReshapeDimInto folds dimension src of t into dimension dst, returning a
// tensor with one dimension fewer.
//
// dst indexes the result, i.e. the shape of t with src removed. Within the
// merged dimension, src is the outer (slower varying) part.
//
// Example:
//
//	// x has shape [2, 3, 4]
//	ReshapeDimInto(0, 1, x) // shape [3, 8]
func ReshapeDimInto[T Tensor[T]](src, dst int, t T) (T, error) {
	shape := t.Shape()
	rank := len(shape)

	s, err := tensor.WrapDim(src, rank)
	if err != nil {
		return t, errors.WithMessage(err, "reshapeDimInto: src")
	}
	if rank < 2 {
		return t, errors.WithMessagef(&tensor.DimError{Dim: dst, Rank: rank - 1},
			"reshapeDimInto: cannot fold a dim of a %dD tensor", rank)
	}
	d, err := tensor.WrapDim(dst, rank-1)
	if err != nil {
		return t, errors.WithMessage(err, "reshapeDimInto: dst")
	}

	newShape := shape.Remove(s)
	newShape[d] *= shape[s]
	return t.MoveDim(s, d).Reshape(newShape), nil
}

// ReshapeDimOutOf splits dimension src of t into two adjacent dimensions of
// sizes size1 and shape[src]/size1, the inverse of ReshapeDimInto.
//
// Panics if shape[src] is not a multiple of size1: callers derive size1 from
// a batch size they already know divides the dimension.
//
// Example:
//
//	// x has shape [3, 8]
//	ReshapeDimOutOf(1, 2, x) // shape [3, 2, 4]
func ReshapeDimOutOf[T Tensor[T]](src, size1 int, t T) (T, error) {
	shape := t.Shape()
	rank := len(shape)
	if rank == 0 {
		return t, errors.WithMessage(&tensor.DimError{Dim: src, Rank: rank},
			"reshapeDimOutOf: cannot split a scalar")
	}

	s, err := tensor.WrapDim(src, rank)
	if err != nil {
		return t, errors.WithMessage(err, "reshapeDimOutOf: src")
	}

	if size1 <= 0 || shape[s]%size1 != 0 {
		exceptions.Panicf("reshapeDimOutOf: size %d of dim %d in %v is not divisible by %d",
			shape[s], s, shape, size1)
	}
	size2 := shape[s] / size1

	newShape := shape.Clone()
	newShape[s] = size1
	newShape = newShape.Insert(s+1, size2)
	return t.Reshape(newShape), nil
}
