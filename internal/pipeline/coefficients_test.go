package pipeline

import (
	"math"
	"testing"
)

func TestLowpassCoefficientsUnityDCGain(t *testing.T) {
	h := LowpassCoefficients(0.1, 31)
	var sum float64
	for _, c := range h {
		sum += c
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("DC gain = %v, want 1", sum)
	}
}

func TestHilbertCoefficientsZeroAtEvenOffsets(t *testing.T) {
	h := HilbertCoefficients(9)
	center := len(h) / 2
	for j, c := range h {
		if (j-center)%2 == 0 && c != 0 {
			t.Errorf("coefficient at even offset %d = %v, want 0", j-center, c)
		}
	}
}

func TestHilbertCoefficientsForcesOddLength(t *testing.T) {
	h := HilbertCoefficients(8)
	if len(h)%2 == 0 {
		t.Errorf("len(h) = %d, want odd", len(h))
	}
}
