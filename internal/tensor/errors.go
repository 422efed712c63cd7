package tensor

import (
	"errors"
	"fmt"
)

// ErrInvalidDim is matched by every dimension-wrapping failure.
var ErrInvalidDim = errors.New("invalid dimension index")

// DimError reports a dimension index that does not wrap into [-rank, rank).
type DimError struct {
	Dim  int
	Rank int
}

func (e *DimError) Error() string {
	if e.Rank <= 0 {
		return fmt.Sprintf("dimension %d out of range for %dD tensor (expected to be in range of [-1, 0])", e.Dim, e.Rank)
	}
	return fmt.Sprintf("dimension %d out of range for %dD tensor (expected to be in range of [%d, %d])",
		e.Dim, e.Rank, -e.Rank, e.Rank-1)
}

// Is makes errors.Is(err, ErrInvalidDim) hold for every DimError.
func (e *DimError) Is(target error) bool {
	return target == ErrInvalidDim
}
