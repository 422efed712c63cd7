package tensor

import "fmt"

// View returns a zero-copy view with the given shape.
//
// Panics if the current strides cannot be viewed as newShape; inserting or
// removing size-1 dimensions is always viewable.
//
// Example:
//
//	x := tensor.Arange[float32](Shape{5, 4}, backend)
//	y := x.View(Shape{5, 1, 1, 4})
func (t *Tensor[T, B]) View(newShape Shape) *Tensor[T, B] {
	return New[T, B](t.backend.View(t.raw, newShape), t.backend)
}

// Reshape returns a tensor with the given shape, as a view when possible
// and as a copy otherwise.
func (t *Tensor[T, B]) Reshape(newShape Shape) *Tensor[T, B] {
	return New[T, B](t.backend.Reshape(t.raw, newShape), t.backend)
}

// Transpose permutes the dimensions (all reversed when axes is empty).
// The result is a view.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw, axes...), t.backend)
}

// MoveDim moves dimension src to position dst, keeping the relative order
// of the other dimensions. Supports negative dim indexing.
// This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Arange[float32](Shape{2, 3, 4}, backend)
//	y := x.MoveDim(-1, 0) // Shape: [4, 2, 3]
func (t *Tensor[T, B]) MoveDim(src, dst int) *Tensor[T, B] {
	ndim := t.Dim()
	s, err := WrapDim(src, ndim)
	if err != nil {
		panic(fmt.Sprintf("movedim: %v", err))
	}
	d, err := WrapDim(dst, ndim)
	if err != nil {
		panic(fmt.Sprintf("movedim: %v", err))
	}
	if s == d || ndim == 0 {
		return t
	}
	return t.Transpose(MoveDimPerm(ndim, s, d)...)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing (valid range is [-ndim-1, ndim]).
// This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Arange[float32](Shape{2, 3}, backend)
//	y := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	d, err := WrapDim(dim, t.Dim()+1)
	if err != nil {
		panic(fmt.Sprintf("unsqueeze: %v", err))
	}
	return t.View(t.Shape().Insert(d, 1))
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Panics if the dimension size is not 1.
// This is a view operation (no data copy).
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	d, err := WrapDim(dim, t.Dim())
	if err != nil {
		panic(fmt.Sprintf("squeeze: %v", err))
	}
	if t.Dim() == 0 {
		return t
	}
	if size := t.Shape()[d]; size != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, must be 1", d, size))
	}
	return t.View(t.Shape().Remove(d))
}

// Contiguous returns a row-major tensor with the same elements.
// Returns the receiver when it is already contiguous.
func (t *Tensor[T, B]) Contiguous() *Tensor[T, B] {
	raw := t.backend.Contiguous(t.raw)
	if raw == t.raw {
		return t
	}
	return New[T, B](raw, t.backend)
}
