package pipeline

import (
	"testing"

	"github.com/nwillc/gomodem/internal/modem"
)

type fixedComplexSource struct {
	vals []complex128
	pos  int
}

func (f *fixedComplexSource) Next() (complex128, bool) {
	if f.pos >= len(f.vals) {
		return 0, false
	}
	v := f.vals[f.pos]
	f.pos++
	return v, true
}

func TestDemodulatorLockPhaseReportsShortInput(t *testing.T) {
	c := modem.NewCarrier(modem.NewFreq(100, 8000))
	d := NewDemodulator(c, func() *modem.FIRFilter {
		return modem.NewFIRFilter(LowpassCoefficients(0.1, 15))
	})

	sig := &fixedComplexSource{vals: make([]complex128, 10)}
	if err := d.LockPhase(sig); err == nil {
		t.Fatal("expected error for input shorter than LockSamples")
	}
}

func TestDemodulatorNextEndsWithInput(t *testing.T) {
	c := modem.NewCarrier(modem.NewFreq(100, 8000))
	d := NewDemodulator(c, func() *modem.FIRFilter {
		return modem.NewFIRFilter(LowpassCoefficients(0.1, 15))
	})

	sig := &fixedComplexSource{vals: []complex128{1, 1, 1}}
	for i := 0; i < 3; i++ {
		if _, _, ok := d.Next(sig); !ok {
			t.Fatalf("sample %d: unexpected end of input", i)
		}
	}
	if _, _, ok := d.Next(sig); ok {
		t.Fatal("expected end of input after 3 samples")
	}
}
