package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0, d1, ...].
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Insert returns a new shape with sizes inserted before position pos.
// The receiver is not modified.
//
// Example:
//
//	Shape{5, 4}.Insert(1, 1, 1) // [5, 1, 1, 4]
func (s Shape) Insert(pos int, sizes ...int) Shape {
	if pos < 0 || pos > len(s) {
		panic(fmt.Sprintf("shape insert: position %d out of range for %v", pos, s))
	}
	out := make(Shape, 0, len(s)+len(sizes))
	out = append(out, s[:pos]...)
	out = append(out, sizes...)
	return append(out, s[pos:]...)
}

// Remove returns a new shape without the entry at pos.
func (s Shape) Remove(pos int) Shape {
	if pos < 0 || pos >= len(s) {
		panic(fmt.Sprintf("shape remove: position %d out of range for %v", pos, s))
	}
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:pos]...)
	return append(out, s[pos+1:]...)
}

// WrapDim normalizes a possibly negative dimension index against rank.
//
// Negative indices count from the end (-1 is the last dimension). A scalar
// (rank 0) accepts 0 and -1, both mapping to 0.
//
// Returns a *DimError (matching ErrInvalidDim) when dim is out of range.
func WrapDim(dim, rank int) (int, error) {
	if rank < 0 {
		return 0, &DimError{Dim: dim, Rank: rank}
	}
	wrapRank := rank
	if wrapRank == 0 {
		wrapRank = 1
	}
	if dim < -wrapRank || dim >= wrapRank {
		return 0, &DimError{Dim: dim, Rank: rank}
	}
	if dim < 0 {
		dim += wrapRank
	}
	return dim, nil
}

// MoveDimPerm returns the axes permutation that moves dimension src to
// position dst while keeping the relative order of every other dimension.
// Both src and dst must already be normalized to [0, rank).
//
// Example:
//
//	MoveDimPerm(4, 2, 0) // [2, 0, 1, 3]
func MoveDimPerm(rank, src, dst int) []int {
	rest := make([]int, 0, rank)
	for i := 0; i < rank; i++ {
		if i != src {
			rest = append(rest, i)
		}
	}
	perm := make([]int, 0, rank)
	perm = append(perm, rest[:dst]...)
	perm = append(perm, src)
	return append(perm, rest[dst:]...)
}

// ValidatePerm checks that axes is a permutation of [0, rank).
func ValidatePerm(axes []int, rank int) error {
	if len(axes) != rank {
		return fmt.Errorf("axes length %d != ndim %d", len(axes), rank)
	}
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("invalid axis %d for %dD tensor", ax, rank)
		}
		if seen[ax] {
			return fmt.Errorf("duplicate axis %d", ax)
		}
		seen[ax] = true
	}
	return nil
}
