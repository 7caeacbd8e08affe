package phasor

import "math"

// QPSK implements quadrature phase-shift keying: with a' = a/√2,
// I = a'·(s0·cosφ − s1·sinφ), Q = a'·(s1·cosφ + s0·sinφ).
type QPSK struct {
	phaseCos, phaseSin float64
	amplitude          float64
}

// NewQPSK builds a QPSK phasor at the given phase offset and amplitude.
func NewQPSK(phase, amplitude float64) *QPSK {
	return &QPSK{
		phaseCos:  math.Cos(phase),
		phaseSin:  math.Sin(phase),
		amplitude: amplitude * math.Sqrt(0.5),
	}
}

// BitsPerSymbol implements Digital.
func (q *QPSK) BitsPerSymbol() int { return 2 }

// Update implements Digital; QPSK has no internal state to advance.
func (q *QPSK) Update(n int, bits []byte) {}

// I implements Digital.
func (q *QPSK) I(n int, bits []byte) float64 {
	s0, s1 := BitToSign(bits[0]), BitToSign(bits[1])
	return q.amplitude * (s0*q.phaseCos - s1*q.phaseSin)
}

// Q implements Digital.
func (q *QPSK) Q(n int, bits []byte) float64 {
	s0, s1 := BitToSign(bits[0]), BitToSign(bits[1])
	return q.amplitude * (s1*q.phaseCos + s0*q.phaseSin)
}
