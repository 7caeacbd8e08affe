package modem

import (
	"math"
	"testing"
)

func TestIntegratorRejectsOutOfRangeSample(t *testing.T) {
	if _, err := NewIntegrator(2.0, 1.0); err == nil {
		t.Fatal("expected error constructing integrator from out-of-range seed sample")
	}

	ig, err := NewIntegrator(0.0, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ig.Next(5.0); err == nil {
		t.Fatal("expected error from Next() on out-of-range sample")
	}
}

func TestIntegratorConstantSignalAccumulatesZero(t *testing.T) {
	ig, err := NewIntegrator(1.0, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		s, err := ig.Next(1.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(s) > 1e-9 {
			t.Fatalf("sample %d: accumulated %v for a constant signal at the acos boundary, want 0", i, s)
		}
	}
}
