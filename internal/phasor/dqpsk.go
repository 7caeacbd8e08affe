package phasor

import (
	"math"

	"github.com/nwillc/gomodem/internal/modem"
)

// DQPSK implements differential M-ary PSK: each symbol advances a phase
// accumulator by v·shift rather than encoding an absolute phase, so a
// receiver only needs the change between symbols.
type DQPSK struct {
	bitsPerSymbol int
	amplitude     float64
	phase         float64
	shift         float64
}

// NewDQPSK builds a DQPSK phasor for bitsPerSymbol bits at amplitude a,
// starting phase, and per-unit phase shift (π/2 for the canonical
// quadrature variant).
func NewDQPSK(bitsPerSymbol int, amplitude, phase, shift float64) *DQPSK {
	return &DQPSK{bitsPerSymbol: bitsPerSymbol, amplitude: amplitude, phase: phase, shift: shift}
}

// BitsPerSymbol implements Digital.
func (d *DQPSK) BitsPerSymbol() int { return d.bitsPerSymbol }

// Update implements Digital.
func (d *DQPSK) Update(n int, bits []byte) {
	d.phase = modem.ReduceAngle(d.phase + float64(BitsToInt(bits))*d.shift)
}

// I implements Digital.
func (d *DQPSK) I(n int, bits []byte) float64 {
	return d.amplitude * math.Cos(d.phase)
}

// Q implements Digital.
func (d *DQPSK) Q(n int, bits []byte) float64 {
	return d.amplitude * math.Sin(d.phase)
}
