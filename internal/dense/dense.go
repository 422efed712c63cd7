// Package dense adapts *tensor.Dense from github.com/pdevine/tensor to the
// vmap helper interface.
//
// Dense tensors own their memory and reshape in place, so every operation
// here works on a clone: results never alias the input, and View is a
// reshape of a copy rather than a zero-copy alias.
package dense

import (
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
	gorgonia "github.com/pdevine/tensor"
)

// Tensor wraps a dense gorgonia-style tensor.
type Tensor struct {
	d *gorgonia.Dense
}

// Wrap adapts an existing dense tensor. The tensor is not copied.
func Wrap(d *gorgonia.Dense) Tensor {
	return Tensor{d: d}
}

// FromFloat32 builds a tensor over a copy of data.
func FromFloat32(data []float32, shape tensor.Shape) (Tensor, error) {
	if err := shape.Validate(); err != nil {
		return Tensor{}, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return Tensor{}, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	backing := append([]float32(nil), data...)
	return Wrap(gorgonia.New(gorgonia.WithShape(shape...), gorgonia.WithBacking(backing))), nil
}

// Arange builds a float32 tensor holding 0, 1, 2, ... in row-major order.
func Arange(shape tensor.Shape) Tensor {
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = float32(i)
	}
	t, err := FromFloat32(data, shape)
	if err != nil {
		panic(fmt.Sprintf("arange: %v", err))
	}
	return t
}

// Dense returns the wrapped tensor.
func (t Tensor) Dense() *gorgonia.Dense {
	return t.d
}

// Shape returns a copy of the dense tensor's shape.
func (t Tensor) Shape() tensor.Shape {
	return tensor.Shape(append([]int(nil), t.d.Shape()...))
}

// NumElements returns the number of elements.
func (t Tensor) NumElements() int {
	return t.d.Size()
}

// View returns a copy of t with the given shape.
func (t Tensor) View(shape tensor.Shape) Tensor {
	return t.reshape("view", shape)
}

// Reshape returns a copy of t with the given shape.
func (t Tensor) Reshape(shape tensor.Shape) Tensor {
	return t.reshape("reshape", shape)
}

// MoveDim returns a copy of t with dimension src moved to dst.
func (t Tensor) MoveDim(src, dst int) Tensor {
	rank := len(t.d.Shape())
	s, err := tensor.WrapDim(src, rank)
	if err != nil {
		panic(fmt.Sprintf("movedim: %v", err))
	}
	d, err := tensor.WrapDim(dst, rank)
	if err != nil {
		panic(fmt.Sprintf("movedim: %v", err))
	}
	out := t.clone()
	if s == d {
		return out
	}
	if err := out.d.T(tensor.MoveDimPerm(rank, s, d)...); err != nil {
		panic(fmt.Sprintf("movedim: %v", err))
	}
	// T only records the permutation; Transpose moves the data.
	if err := out.d.Transpose(); err != nil {
		panic(fmt.Sprintf("movedim: %v", err))
	}
	return out
}

// At returns the element at the given coordinates.
func (t Tensor) At(coords ...int) (any, error) {
	return t.d.At(coords...)
}

// Float32s returns the backing data of a float32 tensor in row-major order.
func (t Tensor) Float32s() []float32 {
	data, ok := t.d.Data().([]float32)
	if !ok {
		panic(fmt.Sprintf("dense: tensor holds %s, not float32", t.d.Dtype()))
	}
	return data
}

func (t Tensor) reshape(op string, shape tensor.Shape) Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("%s: invalid shape: %v", op, err))
	}
	out := t.clone()
	if err := out.d.Reshape(shape...); err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return out
}

func (t Tensor) clone() Tensor {
	d, ok := t.d.Clone().(*gorgonia.Dense)
	if !ok {
		panic("dense: clone did not return *Dense")
	}
	return Tensor{d: d}
}
