package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/vmap/vmap"
)

// describeHandler prints one row per physical axis: its size, its stride and
// the logical index it maps to once the batch dim is moved to the front.
func describeHandler(cmd *cobra.Command, args []string) error {
	x, err := arangeFromFlags(cmd)
	if err != nil {
		return err
	}
	bdim, err := batchDimFromFlags(cmd, x)
	if err != nil {
		return err
	}

	shape := x.Shape()
	strides := x.Raw().Strides()
	batchAxis, batched := bdim.Get()

	var data [][]string
	logical := 0
	for axis, size := range shape {
		role := strconv.Itoa(logical)
		if batched && axis == batchAxis {
			role = "batch"
		} else {
			logical++
		}
		data = append(data, []string{strconv.Itoa(axis), strconv.Itoa(size), strconv.Itoa(strides[axis]), role})
	}

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"AXIS", "SIZE", "STRIDE", "LOGICAL"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	fmt.Fprintf(out, "\nbdim: %v\n", bdim)
	fmt.Fprintf(out, "logical rank: %d\n", vmap.RankWithoutBatchDim(x, bdim))
	fmt.Fprintf(out, "elements per batch entry: %d\n", vmap.NumelWithoutBatchDim(x, bdim))
	return nil
}
