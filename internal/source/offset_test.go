package source

import "testing"

func TestEvenOddOffsetSourceSequence(t *testing.T) {
	inner := NewBitsSource([]byte{1, 1, 1, 0, 0, 1}, 4, 2)
	eo, err := NewEvenOddOffsetSource(inner, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		kind Kind
		bits [2]byte
	}{
		{Changed, [2]byte{1, 0}},
		{Unchanged, [2]byte{1, 0}},
		{Changed, [2]byte{1, 1}},
		{Unchanged, [2]byte{1, 1}},
		{Changed, [2]byte{1, 1}},
		{Unchanged, [2]byte{1, 1}},
		{Changed, [2]byte{1, 0}},
		{Unchanged, [2]byte{1, 0}},
		{Changed, [2]byte{0, 0}},
		{Unchanged, [2]byte{0, 0}},
		{Changed, [2]byte{0, 1}},
		{Unchanged, [2]byte{0, 1}},
	}

	for sample, w := range want {
		u := eo.Update(sample)
		if u.Kind != w.kind {
			t.Fatalf("sample %d: Kind = %v, want %v", sample, u.Kind, w.kind)
		}
		if u.Bits[0] != w.bits[0] || u.Bits[1] != w.bits[1] {
			t.Fatalf("sample %d: Bits = %v, want %v", sample, u.Bits, w.bits)
		}
	}

	if u := eo.Update(12); u.Kind != Finished {
		t.Fatalf("sample 12: Kind = %v, want Finished", u.Kind)
	}
}

func TestEvenOddOffsetSourceRejectsOddPeriod(t *testing.T) {
	inner := NewBitsSource([]byte{0, 0}, 3, 2)
	if _, err := NewEvenOddOffsetSource(inner, 3); err == nil {
		t.Fatal("expected error for odd samples-per-symbol")
	}
}
