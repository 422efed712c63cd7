package tensor

import "testing"

func newArangeRaw(t *testing.T, shape Shape) *RawTensor {
	t.Helper()
	raw, err := NewRaw(shape, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}
	return raw
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Int64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.Dim() != 2 || raw.NumElements() != 6 || raw.ByteSize() != 48 {
		t.Errorf("unexpected metadata: dim=%d numel=%d bytes=%d", raw.Dim(), raw.NumElements(), raw.ByteSize())
	}
	if !raw.IsContiguous() {
		t.Error("new tensor should be contiguous")
	}
	if raw.Size(-1) != 3 {
		t.Errorf("Size(-1) = %d, want 3", raw.Size(-1))
	}

	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("expected error for invalid shape")
	}
}

func TestRawTensor_Permute(t *testing.T) {
	raw := newArangeRaw(t, Shape{2, 3})

	perm, err := raw.Permute(1, 0)
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	if !perm.Shape().Equal(Shape{3, 2}) {
		t.Errorf("shape = %v, want [3, 2]", perm.Shape())
	}
	if !intsEqual(perm.Strides(), []int{1, 3}) {
		t.Errorf("strides = %v, want [1 3]", perm.Strides())
	}
	if !perm.SharesStorage(raw) {
		t.Error("Permute should not copy")
	}
	if perm.IsContiguous() {
		t.Error("transposed view reported contiguous")
	}

	if _, err := raw.Permute(0, 0); err == nil {
		t.Error("expected error for duplicate axes")
	}
}

func TestRawTensor_Contiguous(t *testing.T) {
	raw := newArangeRaw(t, Shape{2, 3})
	if raw.Contiguous() != raw {
		t.Error("Contiguous of a contiguous tensor should return it")
	}

	perm, err := raw.Permute(1, 0)
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}
	c := perm.Contiguous()
	if c.SharesStorage(raw) {
		t.Error("Contiguous of a strided view should copy")
	}
	want := []float32{0, 3, 1, 4, 2, 5}
	got := c.AsFloat32()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("data = %v, want %v", got, want)
		}
	}
}

func TestRawTensor_ViewAs(t *testing.T) {
	raw := newArangeRaw(t, Shape{2, 3})

	view, err := raw.ViewAs(Shape{3, 1, 2})
	if err != nil {
		t.Fatalf("ViewAs failed: %v", err)
	}
	if !view.SharesStorage(raw) {
		t.Error("ViewAs should not copy")
	}

	if _, err := raw.ViewAs(Shape{4}); err == nil {
		t.Error("expected error for element count mismatch")
	}

	perm, _ := raw.Permute(1, 0)
	if _, err := perm.ViewAs(Shape{6}); err == nil {
		t.Error("expected error when flattening a transposed view")
	}
}

func TestRawTensor_NonContiguousAccessPanics(t *testing.T) {
	raw := newArangeRaw(t, Shape{2, 3})
	perm, _ := raw.Permute(1, 0)

	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on a strided view should panic")
		}
	}()
	_ = perm.AsFloat32()
}

func TestRawTensor_DTypeMismatchPanics(t *testing.T) {
	raw := newArangeRaw(t, Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("AsInt32 on float32 tensor should panic")
		}
	}()
	_ = raw.AsInt32()
}

func TestRawTensor_ContiguousManyRows(t *testing.T) {
	raw := newArangeRaw(t, Shape{3, 40, 2})
	perm, err := raw.Permute(1, 2, 0)
	if err != nil {
		t.Fatalf("Permute failed: %v", err)
	}

	got := perm.Contiguous().AsFloat32()
	idx := 0
	for j := 0; j < 40; j++ {
		for k := 0; k < 2; k++ {
			for i := 0; i < 3; i++ {
				if want := float32(i*80 + j*2 + k); got[idx] != want {
					t.Fatalf("element %d = %v, want %v", idx, got[idx], want)
				}
				idx++
			}
		}
	}
}
