package phasor

import (
	"math"
	"testing"

	"github.com/nwillc/gomodem/internal/modem"
)

func TestDefaultSymbolMapCentered(t *testing.T) {
	m := NewDefaultSymbolMap(2)
	if c := m.Coef(0); c != -3 {
		t.Errorf("Coef(0) = %v, want -3", c)
	}
	if c := m.Coef(3); c != 3 {
		t.Errorf("Coef(3) = %v, want 3", c)
	}
}

func TestIncreaseSymbolMap(t *testing.T) {
	var m IncreaseSymbolMap
	if c := m.Coef(2); c != 4 {
		t.Errorf("Coef(2) = %v, want 4", c)
	}
}

func TestMFSKPhaseContinuousAcrossSymbolChange(t *testing.T) {
	f := NewMFSK(2, modem.NewFreq(50, 8000), 1.0, NewDefaultSymbolMap(2))

	n := 10
	iBefore, qBefore := f.I(n, nil), f.Q(n, nil)
	f.Update(n, []byte{0, 1})
	iAfter, qAfter := f.I(n, nil), f.Q(n, nil)

	if math.Abs(iBefore-iAfter) > 1e-9 || math.Abs(qBefore-qAfter) > 1e-9 {
		t.Errorf("phase discontinuity: before (%v,%v), after (%v,%v)", iBefore, qBefore, iAfter, qAfter)
	}
}
