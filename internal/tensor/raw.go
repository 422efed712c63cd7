package tensor

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/vmap/internal/parallel"
)

// copyConfig controls how Contiguous splits a strided copy across goroutines.
// Work is split by outer-dim rows.
var copyConfig = parallel.Config{
	Enabled:      parallel.DefaultConfig().Enabled,
	NumWorkers:   parallel.DefaultConfig().NumWorkers,
	MinChunkSize: 4,
}

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level strided tensor representation.
//
// Several RawTensors may alias one buffer: views produced by ViewAs and
// Permute only rewrite shape, strides and offset. Strides and offset are
// counted in elements, not bytes.
type RawTensor struct {
	data   []byte   // Shared backing buffer
	shape  Shape    // Tensor dimensions
	stride []int    // Element strides per dimension
	dtype  DataType // Runtime type information
	device Device   // Compute device
	offset int      // First element of this view inside data
}

// NewRaw creates a new contiguous RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Offset returns the element offset of this view into the shared buffer.
func (r *RawTensor) Offset() int {
	return r.offset
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// Dim returns the number of dimensions.
func (r *RawTensor) Dim() int {
	return len(r.shape)
}

// Size returns the size of dimension dim. Negative dims count from the end.
// Panics if dim is out of range.
func (r *RawTensor) Size(dim int) int {
	d, err := WrapDim(dim, len(r.shape))
	if err != nil {
		panic(fmt.Sprintf("size: %v", err))
	}
	if len(r.shape) == 0 {
		return 1
	}
	return r.shape[d]
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the memory size of the viewed elements in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsContiguous reports whether the view is laid out row-major without gaps.
func (r *RawTensor) IsContiguous() bool {
	return IsContiguousLayout(r.shape, r.stride)
}

// SharesStorage reports whether r and other alias the same buffer.
func (r *RawTensor) SharesStorage(other *RawTensor) bool {
	if len(r.data) == 0 || len(other.data) == 0 {
		return false
	}
	return &r.data[0] == &other.data[0]
}

// ViewAs returns a zero-copy view of r with newShape.
// Returns an error if the element counts differ or the strides of r do not
// allow the view; Contiguous followed by ViewAs always succeeds.
func (r *RawTensor) ViewAs(newShape Shape) (*RawTensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if r.NumElements() != newShape.NumElements() {
		return nil, fmt.Errorf("shape %v is invalid for input of size %d", newShape, r.NumElements())
	}
	strides, ok := ViewStrides(r.shape, r.stride, newShape)
	if !ok {
		return nil, fmt.Errorf("view size %v is not compatible with input strides %v of shape %v",
			newShape, r.stride, r.shape)
	}
	return r.alias(newShape.Clone(), strides), nil
}

// Permute returns a zero-copy view with dimensions reordered by axes:
// output dimension i is input dimension axes[i].
func (r *RawTensor) Permute(axes ...int) (*RawTensor, error) {
	if err := ValidatePerm(axes, len(r.shape)); err != nil {
		return nil, err
	}
	shape := make(Shape, len(axes))
	strides := make([]int, len(axes))
	for i, ax := range axes {
		shape[i] = r.shape[ax]
		strides[i] = r.stride[ax]
	}
	return r.alias(shape, strides), nil
}

// Contiguous returns r itself if it is already row-major, otherwise a fresh
// row-major copy of the viewed elements.
func (r *RawTensor) Contiguous() *RawTensor {
	if r.IsContiguous() {
		return r
	}

	out, err := NewRaw(r.shape, r.dtype, r.device)
	if err != nil {
		panic(fmt.Sprintf("contiguous: %v", err))
	}

	// Each outer index owns a disjoint block of the output.
	rows := r.shape[0]
	block := r.NumElements() / rows
	parallel.For(rows, func(row int) {
		r.gather(out.data[row*block*r.dtype.Size():], row, block)
	}, copyConfig)
	return out
}

// gather copies the block elements of outer index row into dst row-major.
func (r *RawTensor) gather(dst []byte, row, block int) {
	elem := r.dtype.Size()
	coords := make([]int, len(r.shape))
	coords[0] = row
	for i := 0; i < block; i++ {
		src := r.offset
		for d, c := range coords {
			src += c * r.stride[d]
		}
		copy(dst[i*elem:(i+1)*elem], r.data[src*elem:(src+1)*elem])

		for d := len(coords) - 1; d > 0; d-- {
			coords[d]++
			if coords[d] < r.shape[d] {
				break
			}
			coords[d] = 0
		}
	}
}

// Clone creates a shallow copy of the RawTensor that shares the buffer.
func (r *RawTensor) Clone() *RawTensor {
	return r.alias(r.shape.Clone(), append([]int(nil), r.stride...))
}

func (r *RawTensor) alias(shape Shape, strides []int) *RawTensor {
	return &RawTensor{
		data:   r.data,
		shape:  shape,
		stride: strides,
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
}

// Data returns the raw bytes of a contiguous tensor.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	r.mustContiguous()
	elem := r.dtype.Size()
	return r.data[r.offset*elem : (r.offset+r.NumElements())*elem]
}

func (r *RawTensor) mustContiguous() {
	if !r.IsContiguous() {
		panic(fmt.Sprintf("tensor with shape %v and strides %v is not contiguous", r.shape, r.stride))
	}
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32 or the view is not contiguous.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64 or the view is not contiguous.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32 or the view is not contiguous.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64 or the view is not contiguous.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8 or the view is not contiguous.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.Data()
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool or the view is not contiguous.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	data := r.Data()
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.NumElements())
}
