package vmap

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIncompatibleInplace is matched by every InplaceError.
var ErrIncompatibleInplace = errors.New("vmap: incompatible in-place operation")

// InplaceError reports an in-place op whose self is not batched while one
// of its extra arguments is: the batched argument has more elements than
// self can hold.
type InplaceError struct {
	Op string
}

func (e *InplaceError) Error() string {
	return fmt.Sprintf("vmap: %[1]s(self, *extra_args) is not possible because "+
		"there exists a Tensor `other` in extra_args that has more elements "+
		"than `self`. This happened due to `other` being vmapped over but "+
		"`self` not being vmapped over in a vmap. "+
		"Please try to use out-of-place operators instead of %[1]s. "+
		"If said operator is being called inside the framework, "+
		"please file a bug report instead.", e.Op)
}

// Is makes errors.Is(err, ErrIncompatibleInplace) hold.
func (e *InplaceError) Is(target error) bool {
	return target == ErrIncompatibleInplace
}

// IncompatibleInplaceError returns the error a batching rule must return for
// the in-place op named op when self is unbatched but an argument is batched.
// It never returns nil.
func IncompatibleInplaceError(op string) error {
	return errors.WithStack(&InplaceError{Op: op})
}

// CheckInplaceBatching returns IncompatibleInplaceError(op) when self is not
// batched but at least one of the other arguments is, and nil otherwise.
func CheckInplaceBatching(op string, self BatchDim, others ...BatchDim) error {
	if self.IsPresent() {
		return nil
	}
	for _, other := range others {
		if other.IsPresent() {
			return IncompatibleInplaceError(op)
		}
	}
	return nil
}
