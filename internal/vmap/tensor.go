package vmap

import "github.com/born-ml/vmap/internal/tensor"

// Tensor is the capability set the helpers need from a tensor library.
// T is the concrete tensor type itself, so results keep their static type.
//
// Implementations must not mutate the receiver. Shape and dim errors are
// programming errors and may panic.
type Tensor[T any] interface {
	// Shape returns the physical shape, batch dim included.
	Shape() tensor.Shape

	// NumElements returns the product of Shape.
	NumElements() int

	// View reinterprets the tensor with shape without copying.
	View(shape tensor.Shape) T

	// Reshape is View with a copy fallback for incompatible layouts.
	Reshape(shape tensor.Shape) T

	// MoveDim moves dimension src to position dst.
	MoveDim(src, dst int) T
}
