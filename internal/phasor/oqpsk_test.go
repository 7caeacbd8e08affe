package phasor

import (
	"math"
	"testing"
)

func TestOQPSKIndependentRails(t *testing.T) {
	o := NewOQPSK(1)
	half := math.Sqrt(0.5)

	if i := o.I(0, []byte{1, 0}); math.Abs(i-half) > 1e-9 {
		t.Errorf("I with bit0=1 = %v, want %v", i, half)
	}
	if q := o.Q(0, []byte{0, 1}); math.Abs(q-half) > 1e-9 {
		t.Errorf("Q with bit1=1 = %v, want %v", q, half)
	}
	if i := o.I(0, []byte{0, 1}); math.Abs(i+half) > 1e-9 {
		t.Errorf("I with bit0=0 = %v, want %v", i, -half)
	}
}
