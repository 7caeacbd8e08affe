package phasor

import (
	"math"
	"testing"

	"github.com/nwillc/gomodem/internal/modem"
)

type sliceStream struct {
	vals []float64
	pos  int
}

func (s *sliceStream) Next() (float64, bool) {
	if s.pos >= len(s.vals) {
		return 0, false
	}
	v := s.vals[s.pos]
	s.pos++
	return v, true
}

func TestRawNextConstant(t *testing.T) {
	r := NewRaw(3)
	for n := 0; n < 5; n++ {
		i, q, err := r.Next(n)
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", n, err)
		}
		if i != 3 || q != 0 {
			t.Errorf("sample %d: (I,Q) = (%v,%v), want (3,0)", n, i, q)
		}
	}
}

func TestAMNextFollowsFormula(t *testing.T) {
	src := &sliceStream{vals: []float64{1, -1}}
	am := NewAM(src, 2, 0.5)

	i, q, err := am.Next(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 2.0/2 + (0.5/2)*1; math.Abs(i-want) > 1e-12 || q != 0 {
		t.Errorf("(I,Q) = (%v,%v), want (%v,0)", i, q, want)
	}

	i, _, _ = am.Next(1)
	if want := 2.0/2 + (0.5/2)*-1; math.Abs(i-want) > 1e-12 {
		t.Errorf("second sample I = %v, want %v", i, want)
	}
}

func TestAMNextFinishesWithStream(t *testing.T) {
	src := &sliceStream{vals: []float64{1}}
	am := NewAM(src, 2, 0.5)
	if _, _, err := am.Next(0); err != nil {
		t.Fatalf("unexpected error on first sample: %v", err)
	}
	if _, _, err := am.Next(1); err != ErrFinished {
		t.Fatalf("err = %v, want ErrFinished", err)
	}
}

func TestFMNextStaysOnUnitCircle(t *testing.T) {
	src := &sliceStream{vals: []float64{0, 0.5, -0.5, 0.2}}
	fm, err := NewFM(src, 2, modem.NewFreq(100, 8000))
	if err != nil {
		t.Fatalf("unexpected error constructing FM: %v", err)
	}
	for n := 0; n < 3; n++ {
		i, q, err := fm.Next(n)
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", n, err)
		}
		mag := math.Hypot(i, q)
		if math.Abs(mag-1) > 1e-9 {
			t.Errorf("sample %d: |I+jQ| = %v, want 1", n, mag)
		}
	}
}

func TestFMRejectsOutOfRangeAtConstruction(t *testing.T) {
	src := &sliceStream{vals: []float64{5}}
	if _, err := NewFM(src, 1, modem.NewFreq(100, 8000)); err == nil {
		t.Fatal("expected error seeding integrator with out-of-range sample")
	}
}
