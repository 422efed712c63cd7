// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vmap_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/vmap/backend/cpu"
	"github.com/born-ml/vmap/tensor"
	"github.com/born-ml/vmap/vmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI(t *testing.T) {
	backend := cpu.New()
	x := tensor.Arange[float32](tensor.Shape{3, 5, 4}, backend)

	front, err := vmap.MoveBatchDimToFront(x, vmap.BatchDimAt(1))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{5, 3, 4}, front.Shape())

	bdim := vmap.ValIfNonempty(vmap.BatchDimAt(1), 0)
	assert.Equal(t, 2, vmap.RankWithoutBatchDim(front, bdim))
	assert.Equal(t, 12, vmap.NumelWithoutBatchDim(front, bdim))

	dim, err := vmap.GetPhysicalDim(front, bdim.IsPresent(), -1)
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	padded := vmap.MaybePadToLogicalRank(front, bdim, 4)
	assert.Equal(t, tensor.Shape{5, 1, 1, 3, 4}, padded.Shape())

	err = vmap.CheckInplaceBatching("add_", vmap.NoBatchDim, bdim)
	require.ErrorIs(t, err, vmap.ErrIncompatibleInplace)
}

func ExampleReshapeDimInto() {
	backend := cpu.New()
	x := tensor.Arange[float32](tensor.Shape{2, 3, 4}, backend)

	folded, err := vmap.ReshapeDimInto(0, 1, x)
	if err != nil {
		panic(err)
	}
	fmt.Println(folded.Shape())

	unfolded, err := vmap.ReshapeDimOutOf(1, 2, folded)
	if err != nil {
		panic(err)
	}
	fmt.Println(unfolded.Shape())
	// Output:
	// [3, 8]
	// [3, 2, 4]
}

func ExampleGetPhysicalDim() {
	backend := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{5, 2, 3, 4}, backend) // batched at 0

	dim, err := vmap.GetPhysicalDim(x, true, -1)
	if err != nil {
		panic(err)
	}
	fmt.Println(dim)
	// Output: 3
}
