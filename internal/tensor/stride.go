package tensor

// IsContiguousLayout reports whether strides describe a row-major layout of
// shape. Strides of size-1 dimensions are ignored since they never move.
func IsContiguousLayout(shape Shape, strides []int) bool {
	if len(shape) != len(strides) {
		return false
	}
	expected := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 1 {
			continue
		}
		if strides[i] != expected {
			return false
		}
		expected *= shape[i]
	}
	return true
}

// ViewStrides computes the strides that let newShape alias the memory of a
// tensor with the given shape and strides, without copying.
//
// The old dimensions are grouped into chunks of memory-contiguous dimensions
// and each chunk must be covered exactly by a run of new dimensions. Size-1
// dimensions may be inserted or dropped anywhere.
//
// Returns false when no such strides exist and the reshape needs a copy.
func ViewStrides(shape Shape, strides []int, newShape Shape) ([]int, bool) {
	if shape.NumElements() != newShape.NumElements() {
		return nil, false
	}

	newStrides := make([]int, len(newShape))
	if len(shape) == 0 {
		// Scalar source: any all-ones shape is a view.
		for i := range newStrides {
			newStrides[i] = 1
		}
		return newStrides, true
	}

	viewD := len(newShape) - 1
	chunkBaseStride := strides[len(strides)-1]
	tensorNumel := 1
	viewNumel := 1

	for tensorD := len(shape) - 1; tensorD >= 0; tensorD-- {
		tensorNumel *= shape[tensorD]

		// A chunk ends at the front, or where the next outer dim does not
		// continue the current memory run.
		if tensorD == 0 ||
			(shape[tensorD-1] != 1 && strides[tensorD-1] != tensorNumel*chunkBaseStride) {
			for viewD >= 0 && (viewNumel < tensorNumel || newShape[viewD] == 1) {
				newStrides[viewD] = viewNumel * chunkBaseStride
				viewNumel *= newShape[viewD]
				viewD--
			}
			if viewNumel != tensorNumel {
				return nil, false
			}
			if tensorD > 0 {
				chunkBaseStride = strides[tensorD-1]
				tensorNumel = 1
				viewNumel = 1
			}
		}
	}

	if viewD != -1 {
		return nil, false
	}
	return newStrides, true
}
