// Package phasor implements the analog and digital phasor families: the
// per-sample mapping from a symbol's bits (or nothing, for an analog
// phasor) to an instantaneous (I, Q) pair. Every modulation scheme
// (BPSK, BASK, BFSK, QPSK, OQPSK, QAM, MPSK, MSK, MFSK, CPFSK, DQPSK,
// APSK, AM, FM) is a small struct implementing one of the two interfaces
// below.
package phasor

import "errors"

// ErrFinished is returned by Analog.Next once its driving stream is
// exhausted.
var ErrFinished = errors.New("phasor: stream finished")

// Analog maps a sample index to an (I, Q) pair, ignoring any data
// source. Next returns ErrFinished once the phasor's driving stream (if
// any) is exhausted; any other non-nil error is a numeric bug condition
// (see the Integrator in package modem) that callers should treat as
// fatal rather than end-of-stream.
type Analog interface {
	Next(n int) (i, q float64, err error)
}

// Digital maps a symbol's bits (and the sample index, for schemes whose
// output depends on position within the symbol) to an (I, Q) pair. Update
// fires once per symbol boundary so stateful schemes (phase accumulators,
// alternating flags) can advance.
type Digital interface {
	BitsPerSymbol() int
	Update(n int, bits []byte)
	I(n int, bits []byte) float64
	Q(n int, bits []byte) float64
}

// Next is a convenience wrapper evaluating I and Q together.
func Next(d Digital, n int, bits []byte) (float64, float64) {
	return d.I(n, bits), d.Q(n, bits)
}

// BitToSign maps a 0/1 bit to -1/+1.
func BitToSign(b byte) float64 {
	return 2*float64(b&1) - 1
}

// MaxSymbol returns 2^k - 1, the largest value a k-bit symbol can take.
func MaxSymbol(k int) int {
	return (1 << uint(k)) - 1
}

// BitsToInt packs a most-significant-bit-first slice of 0/1 bytes into an
// integer: Σ (bits[i] & 1) << (len-1-i).
func BitsToInt(bits []byte) int {
	v := 0
	for _, b := range bits {
		v = (v << 1) | int(b&1)
	}
	return v
}
