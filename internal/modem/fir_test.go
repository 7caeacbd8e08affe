package modem

import "testing"

func TestFIRFilterImpulseResponse(t *testing.T) {
	coefs := []float64{1, 2, 3}
	f := NewFIRFilter(coefs)

	got := []float64{
		f.Push(1),
		f.Push(0),
		f.Push(0),
		f.Push(0),
	}
	want := []float64{1, 2, 3, 0}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: Push() = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFIRFilterZeroInitialized(t *testing.T) {
	f := NewFIRFilter([]float64{5, 5, 5})
	if out := f.Push(0); out != 0 {
		t.Fatalf("first Push(0) = %v, want 0 (zero-initialized history)", out)
	}
}
