package main

import (
	"fmt"
	"log/slog"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/vmap/backend/cpu"
	"github.com/born-ml/vmap/tensor"
	"github.com/born-ml/vmap/vmap"
)

type cpuTensor = *tensor.Tensor[float32, *cpu.Backend]

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "vmap",
		Short:         "Inspect batch-dimension helpers on example tensors",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		},
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newFoldCmd(),
		newUnfoldCmd(),
		newPadCmd(),
		newPhysDimCmd(),
		newFrontCmd(),
		newDescribeCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vmap %s\n", version)
		},
	}
}

func newFoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold",
		Short: "Fold dim --src into dim --dst (ReshapeDimInto)",
		Args:  cobra.NoArgs,
		RunE:  foldHandler,
	}
	addShapeFlag(cmd)
	cmd.Flags().Int("src", 0, "Dimension to fold away")
	cmd.Flags().Int("dst", 0, "Dimension to fold into, indexed after removing --src")
	return cmd
}

func foldHandler(cmd *cobra.Command, args []string) error {
	x, err := arangeFromFlags(cmd)
	if err != nil {
		return err
	}
	src, _ := cmd.Flags().GetInt("src")
	dst, _ := cmd.Flags().GetInt("dst")
	slog.Debug("fold", "shape", x.Shape(), "src", src, "dst", dst)

	y, err := vmap.ReshapeDimInto(src, dst, x)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), y.Shape())
	return nil
}

func newUnfoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unfold",
		Short: "Split dim --src into [--size, rest] (ReshapeDimOutOf)",
		Args:  cobra.NoArgs,
		RunE:  unfoldHandler,
	}
	addShapeFlag(cmd)
	cmd.Flags().Int("src", 0, "Dimension to split")
	cmd.Flags().Int("size", 1, "Size of the outer part of the split")
	return cmd
}

func unfoldHandler(cmd *cobra.Command, args []string) error {
	x, err := arangeFromFlags(cmd)
	if err != nil {
		return err
	}
	src, _ := cmd.Flags().GetInt("src")
	size, _ := cmd.Flags().GetInt("size")
	slog.Debug("unfold", "shape", x.Shape(), "src", src, "size", size)

	var y cpuTensor
	panicErr := exceptions.TryCatch[error](func() {
		y, err = vmap.ReshapeDimOutOf(src, size, x)
	})
	if panicErr != nil {
		return panicErr
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), y.Shape())
	return nil
}

func newPadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pad",
		Short: "Pad to a logical rank with size-1 dims (MaybePadToLogicalRank)",
		Args:  cobra.NoArgs,
		RunE:  padHandler,
	}
	addShapeFlag(cmd)
	addBatchDimFlag(cmd)
	cmd.Flags().Int("rank", 0, "Target logical rank")
	return cmd
}

func padHandler(cmd *cobra.Command, args []string) error {
	x, err := arangeFromFlags(cmd)
	if err != nil {
		return err
	}
	bdim, err := batchDimFromFlags(cmd, x)
	if err != nil {
		return err
	}
	rank, _ := cmd.Flags().GetInt("rank")

	// Padding goes right after the batch dim, so bring it to the front first.
	x, err = vmap.MoveBatchDimToFront(x, bdim)
	if err != nil {
		return err
	}
	bdim = vmap.ValIfNonempty(bdim, 0)
	slog.Debug("pad", "shape", x.Shape(), "bdim", bdim, "rank", rank)

	fmt.Fprintln(cmd.OutOrStdout(), vmap.MaybePadToLogicalRank(x, bdim, rank).Shape())
	return nil
}

func newPhysDimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "physdim",
		Short: "Map a logical dim to its physical index (GetPhysicalDim)",
		Args:  cobra.NoArgs,
		RunE:  physDimHandler,
	}
	addShapeFlag(cmd)
	cmd.Flags().Bool("batched", false, "Treat dim 0 as the batch dim")
	cmd.Flags().Int("dim", 0, "Logical dimension, negative counts from the end")
	return cmd
}

func physDimHandler(cmd *cobra.Command, args []string) error {
	x, err := arangeFromFlags(cmd)
	if err != nil {
		return err
	}
	batched, _ := cmd.Flags().GetBool("batched")
	dim, _ := cmd.Flags().GetInt("dim")

	phys, err := vmap.GetPhysicalDim(x, batched, dim)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), phys)
	return nil
}

func newFrontCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "front",
		Short: "Move the batch dim to position 0 (MoveBatchDimToFront)",
		Args:  cobra.NoArgs,
		RunE:  frontHandler,
	}
	addShapeFlag(cmd)
	addBatchDimFlag(cmd)
	return cmd
}

func frontHandler(cmd *cobra.Command, args []string) error {
	x, err := arangeFromFlags(cmd)
	if err != nil {
		return err
	}
	bdim, err := batchDimFromFlags(cmd, x)
	if err != nil {
		return err
	}

	y, err := vmap.MoveBatchDimToFront(x, bdim)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v strides=%v\n", y.Shape(), y.Raw().Strides())
	return nil
}

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the physical and logical layout of a batched tensor",
		Args:  cobra.NoArgs,
		RunE:  describeHandler,
	}
	addShapeFlag(cmd)
	addBatchDimFlag(cmd)
	return cmd
}

func addShapeFlag(cmd *cobra.Command) {
	cmd.Flags().IntSlice("shape", nil, "Tensor shape, e.g. 2,3,4")
	_ = cmd.MarkFlagRequired("shape")
}

func addBatchDimFlag(cmd *cobra.Command) {
	cmd.Flags().Int("bdim", 0, "Batch dimension (omit for an unbatched tensor)")
}

// arangeFromFlags builds a float32 tensor holding 0..n-1 in the --shape layout.
func arangeFromFlags(cmd *cobra.Command) (cpuTensor, error) {
	dims, err := cmd.Flags().GetIntSlice("shape")
	if err != nil {
		return nil, err
	}
	shape := tensor.Shape(dims)
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessage(err, "--shape")
	}
	return tensor.Arange[float32](shape, cpu.New()), nil
}

// batchDimFromFlags returns NoBatchDim unless --bdim was given, in which case
// it must be a valid dim of x.
func batchDimFromFlags(cmd *cobra.Command, x cpuTensor) (vmap.BatchDim, error) {
	if !cmd.Flags().Changed("bdim") {
		return vmap.NoBatchDim, nil
	}
	dim, _ := cmd.Flags().GetInt("bdim")
	if x.Dim() == 0 {
		return vmap.NoBatchDim, errors.New("--bdim: a scalar has no batch dim")
	}
	wrapped, err := tensor.WrapDim(dim, x.Dim())
	if err != nil {
		return vmap.NoBatchDim, errors.WithMessage(err, "--bdim")
	}
	return vmap.BatchDimAt(wrapped), nil
}
