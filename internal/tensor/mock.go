package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// Reshape and Transpose always materialize a fresh contiguous tensor, so it
// serves as a reference for results that must not depend on aliasing.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Reshape copies t into a new tensor with newShape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	src := t.Contiguous()
	out, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if out.NumElements() != src.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v", t.Shape(), newShape))
	}
	copy(out.Data(), src.Data())
	return out
}

// View returns a zero-copy view; the mock still honours stride checks.
func (m *MockBackend) View(t *RawTensor, newShape Shape) *RawTensor {
	view, err := t.ViewAs(newShape)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return view
}

// Transpose permutes dimensions and materializes the result.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	if len(axes) == 0 {
		axes = ReverseAxes(t.Dim())
	}
	view, err := t.Permute(axes...)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}
	out := view.Contiguous()
	if out == view {
		// Already row-major: copy anyway so results never alias inputs.
		return m.Reshape(view, view.Shape())
	}
	return out
}

// Contiguous returns a row-major copy when needed.
func (m *MockBackend) Contiguous(t *RawTensor) *RawTensor {
	return t.Contiguous()
}

// ReverseAxes returns [ndim-1, ..., 1, 0], the default transpose order.
func ReverseAxes(ndim int) []int {
	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = ndim - 1 - i
	}
	return axes
}
