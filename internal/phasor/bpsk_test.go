package phasor

import (
	"math"
	"testing"
)

func TestBPSKSignFlipsWithBit(t *testing.T) {
	b := NewBPSK(0, 2)
	if i, q := b.I(0, []byte{1}), b.Q(0, []byte{1}); i != 2 || q != 0 {
		t.Errorf("bit 1: (I,Q) = (%v,%v), want (2,0)", i, q)
	}
	if i, q := b.I(0, []byte{0}), b.Q(0, []byte{0}); i != -2 || q != 0 {
		t.Errorf("bit 0: (I,Q) = (%v,%v), want (-2,0)", i, q)
	}
}

func TestBPSKPhaseOffset(t *testing.T) {
	b := NewBPSK(math.Pi/2, 1)
	i, q := b.I(0, []byte{1}), b.Q(0, []byte{1})
	if math.Abs(i) > 1e-12 || math.Abs(q-1) > 1e-12 {
		t.Errorf("(I,Q) = (%v,%v), want (~0,1)", i, q)
	}
}
