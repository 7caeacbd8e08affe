package source

import "testing"

func TestSymbolClockPeriodFive(t *testing.T) {
	c := NewSymbolClock(5)
	want := []bool{true, false, false, false, false, true, false, false, false, false, true}

	for s, w := range want {
		if got := c.Tick(s); got != w {
			t.Errorf("Tick(%d) = %v, want %v", s, got, w)
		}
	}
}
