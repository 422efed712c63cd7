package tensor

import (
	"errors"
	"testing"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 7}, 7},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("expected error for zero dimension")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestShape_ComputeStrides(t *testing.T) {
	got := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ComputeStrides() = %v, want %v", got, want)
		}
	}
	if len(Shape{}.ComputeStrides()) != 0 {
		t.Error("scalar strides should be empty")
	}
}

func TestShape_InsertRemove(t *testing.T) {
	s := Shape{5, 4}

	padded := s.Insert(1, 1, 1)
	if !padded.Equal(Shape{5, 1, 1, 4}) {
		t.Errorf("Insert(1, 1, 1) = %v, want [5, 1, 1, 4]", padded)
	}
	if !s.Equal(Shape{5, 4}) {
		t.Errorf("Insert modified the receiver: %v", s)
	}

	if got := s.Insert(2, 9); !got.Equal(Shape{5, 4, 9}) {
		t.Errorf("Insert(2, 9) = %v, want [5, 4, 9]", got)
	}

	removed := Shape{2, 3, 4}.Remove(0)
	if !removed.Equal(Shape{3, 4}) {
		t.Errorf("Remove(0) = %v, want [3, 4]", removed)
	}

	defer func() {
		if recover() == nil {
			t.Error("Remove out of range should panic")
		}
	}()
	_ = s.Remove(2)
}

func TestShape_String(t *testing.T) {
	if got := (Shape{3, 8}).String(); got != "[3, 8]" {
		t.Errorf("String() = %q", got)
	}
	if got := (Shape{}).String(); got != "[]" {
		t.Errorf("String() = %q", got)
	}
}

func TestWrapDim(t *testing.T) {
	tests := []struct {
		dim, rank int
		want      int
		wantErr   bool
	}{
		{0, 3, 0, false},
		{2, 3, 2, false},
		{-1, 3, 2, false},
		{-3, 3, 0, false},
		{3, 3, 0, true},
		{-4, 3, 0, true},
		{0, 0, 0, false},
		{-1, 0, 0, false},
		{1, 0, 0, true},
	}
	for _, tt := range tests {
		got, err := WrapDim(tt.dim, tt.rank)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDim) {
				t.Errorf("WrapDim(%d, %d) error = %v, want ErrInvalidDim", tt.dim, tt.rank, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("WrapDim(%d, %d) = %d, %v; want %d", tt.dim, tt.rank, got, err, tt.want)
		}
	}
}

func TestDimError_Message(t *testing.T) {
	_, err := WrapDim(5, 3)
	want := "dimension 5 out of range for 3D tensor (expected to be in range of [-3, 2])"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestMoveDimPerm(t *testing.T) {
	tests := []struct {
		rank, src, dst int
		want           []int
	}{
		{4, 2, 0, []int{2, 0, 1, 3}},
		{4, 0, 3, []int{1, 2, 3, 0}},
		{3, 1, 1, []int{0, 1, 2}},
		{3, 0, 1, []int{1, 0, 2}},
	}
	for _, tt := range tests {
		got := MoveDimPerm(tt.rank, tt.src, tt.dst)
		if len(got) != len(tt.want) {
			t.Fatalf("MoveDimPerm(%d, %d, %d) = %v, want %v", tt.rank, tt.src, tt.dst, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("MoveDimPerm(%d, %d, %d) = %v, want %v", tt.rank, tt.src, tt.dst, got, tt.want)
				break
			}
		}
	}
}

func TestValidatePerm(t *testing.T) {
	if err := ValidatePerm([]int{2, 0, 1}, 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePerm([]int{0, 0, 1}, 3); err == nil {
		t.Error("expected duplicate axis error")
	}
	if err := ValidatePerm([]int{0, 1}, 3); err == nil {
		t.Error("expected length error")
	}
	if err := ValidatePerm([]int{0, 1, 3}, 3); err == nil {
		t.Error("expected range error")
	}
}
