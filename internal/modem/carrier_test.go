package modem

import "testing"

func TestCarrierAdvanceMatchesReduce(t *testing.T) {
	f := NewFreq(900, 10000)
	c := NewCarrier(f)

	for k := 0; k < 1000; k++ {
		got := c.Advance()
		want := ReduceAngle(f.SampleFreq() * float64(k))
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("sample %d: Advance() = %v, want %v", k, got, want)
		}
	}
}

func TestCarrierSampleIndex(t *testing.T) {
	c := NewCarrier(NewFreq(900, 10000))
	if c.SampleIndex() != 0 {
		t.Fatalf("fresh carrier SampleIndex() = %d, want 0", c.SampleIndex())
	}
	c.Advance()
	c.Advance()
	if c.SampleIndex() != 2 {
		t.Fatalf("SampleIndex() after two Advance() = %d, want 2", c.SampleIndex())
	}
}
