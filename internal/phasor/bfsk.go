package phasor

import (
	"math"

	"github.com/nwillc/gomodem/internal/modem"
)

// BFSK implements continuous-phase binary frequency-shift keying: a phase
// accumulator is nudged at each symbol boundary so the output stays phase
// continuous across the bit transition.
type BFSK struct {
	deviation float64
	amplitude float64
	phase     float64
	prev      byte
}

// NewBFSK builds a BFSK phasor with the given frequency deviation and
// amplitude.
func NewBFSK(dev modem.Freq, amplitude float64) *BFSK {
	return &BFSK{deviation: dev.SampleFreq(), amplitude: amplitude}
}

// BitsPerSymbol implements Digital.
func (f *BFSK) BitsPerSymbol() int { return 1 }

func (f *BFSK) rads(n int, b byte) float64 {
	return float64(b) * f.deviation * float64(n)
}

func (f *BFSK) inner(n int, b byte) float64 {
	return f.rads(n, b) + f.phase
}

// Update implements Digital.
func (f *BFSK) Update(n int, bits []byte) {
	b := bits[0] & 1
	if b == f.prev {
		return
	}
	if b == 1 {
		f.phase = modem.ReduceAngle(f.phase - f.rads(n, 1))
	} else {
		f.phase = modem.ReduceAngle(f.phase + f.rads(n-1, 1))
	}
	f.prev = b
}

// I implements Digital.
func (f *BFSK) I(n int, bits []byte) float64 {
	return f.amplitude * math.Cos(f.inner(n, bits[0]&1))
}

// Q implements Digital.
func (f *BFSK) Q(n int, bits []byte) float64 {
	return f.amplitude * math.Sin(f.inner(n, bits[0]&1))
}
