package phasor

import "testing"

func TestBASKOnOff(t *testing.T) {
	b := NewBASK(5)
	if i, q := b.I(0, []byte{1}), b.Q(0, []byte{1}); i != 5 || q != 0 {
		t.Errorf("bit 1: (I,Q) = (%v,%v), want (5,0)", i, q)
	}
	if i, q := b.I(0, []byte{0}), b.Q(0, []byte{0}); i != 0 || q != 0 {
		t.Errorf("bit 0: (I,Q) = (%v,%v), want (0,0)", i, q)
	}
}
