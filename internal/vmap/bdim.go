package vmap

import "fmt"

// BatchDim is an optional dimension index naming the vmap batch axis of a
// tensor. The zero value is NoBatchDim: the tensor is not batched.
type BatchDim struct {
	dim int
	ok  bool
}

// NoBatchDim marks a tensor that is not vmapped over.
var NoBatchDim = BatchDim{}

// BatchDimAt marks dim as the batch axis.
func BatchDimAt(dim int) BatchDim {
	return BatchDim{dim: dim, ok: true}
}

// FrontBatchDim returns BatchDimAt(0) when hasBatchDim is set and
// NoBatchDim otherwise. Batch dims are kept at the front by convention.
func FrontBatchDim(hasBatchDim bool) BatchDim {
	if hasBatchDim {
		return BatchDimAt(0)
	}
	return NoBatchDim
}

// Get returns the batch axis and whether one is present.
func (b BatchDim) Get() (int, bool) {
	return b.dim, b.ok
}

// IsPresent reports whether a batch axis is set.
func (b BatchDim) IsPresent() bool {
	return b.ok
}

// Dim returns the batch axis. Panics on NoBatchDim.
func (b BatchDim) Dim() int {
	if !b.ok {
		panic("vmap: Dim called on NoBatchDim")
	}
	return b.dim
}

func (b BatchDim) String() string {
	if !b.ok {
		return "none"
	}
	return fmt.Sprintf("bdim(%d)", b.dim)
}

// ValIfNonempty returns BatchDimAt(newDim) if src is present and NoBatchDim
// otherwise. Batching rules use it to carry "is batched" over to the output
// of an op whose batch axis position they already know.
//
// Example:
//
//	out := ValIfNonempty(selfBDim, 0) // output batched at 0 iff self was batched
func ValIfNonempty(src BatchDim, newDim int) BatchDim {
	if src.ok {
		return BatchDimAt(newDim)
	}
	return NoBatchDim
}
