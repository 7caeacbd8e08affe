package phasor

import "math"

// BPSK implements binary phase-shift keying: I = s·a·cos(φ), Q = s·a·sin(φ)
// where s = BitToSign(b).
type BPSK struct {
	phase     float64
	amplitude float64
}

// NewBPSK builds a BPSK phasor at the given phase offset and amplitude.
func NewBPSK(phase, amplitude float64) *BPSK {
	return &BPSK{phase: phase, amplitude: amplitude}
}

// BitsPerSymbol implements Digital.
func (b *BPSK) BitsPerSymbol() int { return 1 }

// Update implements Digital; BPSK has no internal state to advance.
func (b *BPSK) Update(n int, bits []byte) {}

func (b *BPSK) common(bits []byte) float64 {
	return BitToSign(bits[0]) * b.amplitude
}

// I implements Digital.
func (b *BPSK) I(n int, bits []byte) float64 {
	return b.common(bits) * math.Cos(b.phase)
}

// Q implements Digital.
func (b *BPSK) Q(n int, bits []byte) float64 {
	return b.common(bits) * math.Sin(b.phase)
}
