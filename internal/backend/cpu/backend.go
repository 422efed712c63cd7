// Package cpu implements the CPU backend for strided tensor shape operations.
package cpu

import (
	"fmt"

	"github.com/born-ml/vmap/internal/tensor"
)

// CPUBackend implements tensor shape operations on CPU.
// Views alias the input buffer whenever the strides permit it.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Reshape returns a tensor with the same data but different shape.
//
// Reshape is a view operation (zero-copy) when the layout of t allows it,
// e.g. after inserting size-1 dims or merging adjacent contiguous dims.
// Otherwise t is first made contiguous.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	if view, err := t.ViewAs(newShape); err == nil {
		return view
	}

	view, err := t.Contiguous().ViewAs(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return view
}

// View returns a zero-copy view of t with newShape.
// Panics when the strides of t are incompatible with newShape.
func (cpu *CPUBackend) View(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	view, err := t.ViewAs(newShape)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return view
}

// Transpose transposes the tensor by permuting its dimensions.
// The result is a strided view of the input.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = tensor.ReverseAxes(t.Dim())
	}

	view, err := t.Permute(axes...)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}
	return view
}

// Contiguous returns t when it is row-major, otherwise a row-major copy.
func (cpu *CPUBackend) Contiguous(t *tensor.RawTensor) *tensor.RawTensor {
	return t.Contiguous()
}
