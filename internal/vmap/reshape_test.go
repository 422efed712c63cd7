package vmap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/born-ml/vmap/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshapeDimInto(t *testing.T) {
	t.Run("fold front dim into next", func(t *testing.T) {
		x := arange(2, 3, 4)
		got, err := ReshapeDimInto(0, 1, x)
		require.NoError(t, err)
		assertShape(t, tensor.Shape{3, 8}, got.Shape())
		assert.Equal(t, x.NumElements(), got.NumElements())

		// src is the outer part of the merged dim.
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 4; k++ {
					require.Equal(t, x.At(i, j, k), got.At(j, i*4+k))
				}
			}
		}
	})

	t.Run("fold into earlier dim", func(t *testing.T) {
		x := arange(2, 3, 4)
		got, err := ReshapeDimInto(2, 0, x)
		require.NoError(t, err)
		assertShape(t, tensor.Shape{8, 3}, got.Shape())
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 4; k++ {
					require.Equal(t, x.At(i, j, k), got.At(k*2+i, j))
				}
			}
		}
	})

	t.Run("negative dims", func(t *testing.T) {
		x := arange(5, 2, 3)
		got, err := ReshapeDimInto(0, -1, x)
		require.NoError(t, err)
		assertShape(t, tensor.Shape{2, 15}, got.Shape())
	})

	t.Run("src out of range", func(t *testing.T) {
		_, err := ReshapeDimInto(3, 0, arange(2, 3, 4))
		require.ErrorIs(t, err, tensor.ErrInvalidDim)
	})

	t.Run("dst out of range of result", func(t *testing.T) {
		_, err := ReshapeDimInto(0, 2, arange(2, 3, 4))
		require.ErrorIs(t, err, tensor.ErrInvalidDim)
	})

	t.Run("1D tensor", func(t *testing.T) {
		_, err := ReshapeDimInto(0, 0, arange(4))
		require.ErrorIs(t, err, tensor.ErrInvalidDim)
	})
}

func TestReshapeDimOutOf(t *testing.T) {
	t.Run("split last dim", func(t *testing.T) {
		x := arange(3, 8)
		got, err := ReshapeDimOutOf(1, 2, x)
		require.NoError(t, err)
		assertShape(t, tensor.Shape{3, 2, 4}, got.Shape())
		assert.Equal(t, x.Data(), got.Data())
	})

	t.Run("split front dim", func(t *testing.T) {
		got, err := ReshapeDimOutOf(0, 3, arange(6, 5))
		require.NoError(t, err)
		assertShape(t, tensor.Shape{3, 2, 5}, got.Shape())
	})

	t.Run("negative dim", func(t *testing.T) {
		got, err := ReshapeDimOutOf(-2, 1, arange(4, 6))
		require.NoError(t, err)
		assertShape(t, tensor.Shape{1, 4, 6}, got.Shape())
	})

	t.Run("src out of range", func(t *testing.T) {
		_, err := ReshapeDimOutOf(2, 2, arange(3, 8))
		require.ErrorIs(t, err, tensor.ErrInvalidDim)
	})

	t.Run("not divisible panics", func(t *testing.T) {
		x := arange(3, 8)
		msg := recoverMessage(func() { _, _ = ReshapeDimOutOf(1, 3, x) })
		assert.Contains(t, msg, "not divisible by 3")
	})

	t.Run("zero size panics", func(t *testing.T) {
		x := arange(3, 8)
		assert.Panics(t, func() { _, _ = ReshapeDimOutOf(1, 0, x) })
	})
}

func TestReshapeDimRoundTrip(t *testing.T) {
	// Unfolding a batch of 2 out of dim 0 and folding it back is the identity.
	x := arange(6, 4)
	split, err := ReshapeDimOutOf(0, 2, x)
	require.NoError(t, err)
	assertShape(t, tensor.Shape{2, 3, 4}, split.Shape())

	merged, err := ReshapeDimInto(0, 0, split)
	require.NoError(t, err)
	assertShape(t, x.Shape(), merged.Shape())
	assert.Equal(t, x.Data(), merged.Data())
}

func TestReshapeDimIntoNonContiguous(t *testing.T) {
	// After the move the merged dims are not adjacent in memory, so Reshape
	// has to copy; elements must still follow the logical layout.
	x := arange(4, 2, 3).MoveDim(0, 2) // [2, 3, 4], non-contiguous
	require.False(t, x.IsContiguous())

	got, err := ReshapeDimInto(0, 1, x)
	require.NoError(t, err)
	assertShape(t, tensor.Shape{3, 8}, got.Shape())
	assert.False(t, got.Raw().SharesStorage(x.Raw()))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				require.Equal(t, x.At(i, j, k), got.At(j, i*4+k))
			}
		}
	}
}

func TestReshapeHelpersOnMockBackend(t *testing.T) {
	backend := tensor.NewMockBackend()
	x := tensor.Arange[int64](tensor.Shape{2, 3, 4}, backend)

	folded, err := ReshapeDimInto(0, 1, x)
	require.NoError(t, err)
	assertShape(t, tensor.Shape{3, 8}, folded.Shape())

	unfolded, err := ReshapeDimOutOf(1, 2, folded)
	require.NoError(t, err)
	assertShape(t, tensor.Shape{3, 2, 4}, unfolded.Shape())

	front, err := MoveBatchDimToFront(unfolded, BatchDimAt(1))
	require.NoError(t, err)
	assertShape(t, x.Shape(), front.Shape())
	assert.Equal(t, x.Data(), front.Data())
}

func recoverMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return strings.TrimSpace(msg)
}
