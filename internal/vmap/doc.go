// Package vmap holds the shape helpers batching rules use to deal with an
// optional batch dimension.
//
// A batched tensor carries one extra physical axis, the batch dim, that user
// code never sees. The helpers translate between the logical view (without
// the batch dim) and the physical tensor, move the batch dim to the front,
// pad logical ranks with size-1 dims, and fold or unfold one dimension into
// another.
//
// The helpers are generic over any tensor type implementing Tensor, so they
// work with Born tensors and with adapters over other tensor libraries.
//
// Errors:
//   - dims that do not wrap into range return an error matching
//     tensor.ErrInvalidDim;
//   - broken internal invariants (ReshapeDimOutOf divisibility) panic;
//   - IncompatibleInplaceError builds the error batching rules return when an
//     in-place op cannot be vmapped.
package vmap
