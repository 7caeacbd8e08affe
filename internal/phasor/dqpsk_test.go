package phasor

import (
	"math"
	"testing"
)

func TestDQPSKAccumulator(t *testing.T) {
	d := NewDQPSK(2, 1, 0, math.Pi/2)

	steps := []struct {
		bits [2]byte
		i, q float64
	}{
		{[2]byte{0, 0}, 1, 0},
		{[2]byte{0, 1}, 0, 1},
		{[2]byte{1, 0}, 0, -1},
		{[2]byte{1, 1}, -1, 0},
		{[2]byte{0, 0}, -1, 0},
		{[2]byte{1, 1}, 0, 1},
	}
	for n, s := range steps {
		bits := s.bits[:]
		d.Update(n, bits)
		i, q := d.I(n, bits), d.Q(n, bits)
		if math.Abs(i-s.i) > 1e-6 || math.Abs(q-s.q) > 1e-6 {
			t.Errorf("step %d bits %v: (I,Q) = (%v,%v), want (%v,%v)", n, s.bits, i, q, s.i, s.q)
		}
	}
}
