package phasor

import (
	"math"
	"testing"
)

func TestMSKUnitEnvelope(t *testing.T) {
	m, err := NewMSK(1, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for n := 0; n < 8; n++ {
		i, q := m.I(n, []byte{1, 0}), m.Q(n, []byte{1, 0})
		if mag := math.Hypot(i, q); math.Abs(mag-1) > 1e-9 {
			t.Errorf("sample %d: |I+jQ| = %v, want 1", n, mag)
		}
	}
}

func TestNewMSKRejectsOddSamplesPerSymbol(t *testing.T) {
	if _, err := NewMSK(1, 7); err == nil {
		t.Fatal("expected error for odd samples_per_symbol")
	}
}
