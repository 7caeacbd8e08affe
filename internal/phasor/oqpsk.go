package phasor

import "math"

// OQPSK implements offset QPSK: I = a'·s0, Q = a'·s1 with a' = a/√2. It
// relies on an EvenOddOffsetSource upstream to stagger the Q bit by a
// half symbol.
type OQPSK struct {
	amplitude float64
}

// NewOQPSK builds an OQPSK phasor at the given amplitude.
func NewOQPSK(amplitude float64) *OQPSK {
	return &OQPSK{amplitude: amplitude * math.Sqrt(0.5)}
}

// BitsPerSymbol implements Digital.
func (o *OQPSK) BitsPerSymbol() int { return 2 }

// Update implements Digital; OQPSK has no internal state to advance.
func (o *OQPSK) Update(n int, bits []byte) {}

// I implements Digital.
func (o *OQPSK) I(n int, bits []byte) float64 {
	return BitToSign(bits[0]) * o.amplitude
}

// Q implements Digital.
func (o *OQPSK) Q(n int, bits []byte) float64 {
	return BitToSign(bits[1]) * o.amplitude
}
