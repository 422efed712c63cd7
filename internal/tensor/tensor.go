package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is a generic tensor with element type T and backend B.
//
// Shape operations (View, Reshape, Transpose, MoveDim, ...) never mutate the
// receiver; they return a new Tensor that may alias the receiver's memory.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Arange[float32](Shape{2, 3, 4}, backend)
//	y := x.MoveDim(2, 0) // Shape: [4, 2, 3]
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return &Tensor[T, B]{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		return nil, err
	}

	t := New[T, B](raw, b)
	copy(typedSlice[T](raw), data)

	return t, nil
}

// Zeros creates a zero-filled tensor. Panics on an invalid shape.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return New[T, B](raw, b)
}

// Arange creates a tensor whose elements are 0, 1, 2, ... in row-major order.
// Handy for checking that shape operations keep elements in place.
// Panics on an invalid shape or a bool element type.
func Arange[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T](shape, b)
	data := typedSlice[T](t.raw)
	for i := range data {
		data[i] = fromInt[T](i)
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// Dim returns the number of dimensions.
func (t *Tensor[T, B]) Dim() int {
	return t.raw.Dim()
}

// Size returns the size of dimension dim (negative dims count from the end).
func (t *Tensor[T, B]) Size(dim int) int {
	return t.raw.Size(dim)
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// IsContiguous reports whether the tensor is laid out row-major.
func (t *Tensor[T, B]) IsContiguous() bool {
	return t.raw.IsContiguous()
}

// Data returns the elements in row-major order of the logical shape.
//
// For contiguous tensors the slice aliases the tensor memory.
// WARNING: Modifications to the returned slice will then modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	return typedSlice[T](t.backend.Contiguous(t.raw))
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Arange[float32](Shape{3, 4}, backend)
//	value := t.At(1, 2) // 6
func (t *Tensor[T, B]) At(indices ...int) T {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := t.raw.Offset()
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * strides[i]
	}

	return elementAt[T](t.raw, offset)
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Clone returns a tensor sharing the same memory with independent metadata.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return New[T, B](t.raw.Clone(), t.backend)
}

// typedSlice reinterprets a contiguous raw tensor as []T.
func typedSlice[T DType](raw *RawTensor) []T {
	data := raw.Data()
	//nolint:gosec // unsafe.Slice for zero-copy access, dtype checked by DataTypeOf
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), raw.NumElements())
}

// elementAt reads the element at an absolute element offset of the buffer.
func elementAt[T DType](raw *RawTensor, offset int) T {
	size := raw.dtype.Size()
	b := raw.data[offset*size : (offset+1)*size]
	//nolint:gosec // element-sized read from a dtype-matched buffer
	return *(*T)(unsafe.Pointer(&b[0]))
}

func fromInt[T DType](i int) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(i)).(T)
	case float64:
		return any(float64(i)).(T)
	case int32:
		return any(int32(i)).(T)
	case int64:
		return any(int64(i)).(T)
	case uint8:
		return any(uint8(i)).(T)
	default:
		panic(fmt.Sprintf("arange: unsupported dtype %s", DataTypeOf[T]()))
	}
}
