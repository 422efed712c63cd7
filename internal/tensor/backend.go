package tensor

// Backend defines the shape operations a compute backend provides.
// Backends panic on invalid arguments, mirroring index errors on slices.
//
// Implementations:
//   - cpu.CPUBackend: strided views with copy fallback
//   - MockBackend: naive reference that always copies on reshape
type Backend interface {
	// Reshape returns t with newShape, as a view when the strides allow it
	// and as a contiguous copy otherwise.
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// View returns a zero-copy view of t with newShape.
	// Panics if the layout of t cannot be viewed as newShape.
	View(t *RawTensor, newShape Shape) *RawTensor

	// Transpose permutes dimensions. With no axes, all dims are reversed.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Contiguous returns a row-major tensor with the same elements as t.
	Contiguous(t *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
