package phasor

import (
	"math"
	"testing"

	"github.com/nwillc/gomodem/internal/modem"
)

func TestCPFSKUnitEnvelope(t *testing.T) {
	rates, err := modem.NewRates(1200, 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewCPFSK(2, rates, 1.0, 2)
	for n := 0; n < 5; n++ {
		i, q := c.I(n, []byte{1, 0}), c.Q(n, []byte{1, 0})
		if mag := math.Hypot(i, q); math.Abs(mag-1) > 1e-9 {
			t.Errorf("sample %d: |I+jQ| = %v, want 1", n, mag)
		}
	}
}
