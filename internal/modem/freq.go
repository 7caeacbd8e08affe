// Package modem implements the carrier, rate, filter and loop primitives
// shared by every modulation scheme in the pipeline: a sample-indexed
// phase source, a fixed-coefficient FIR filter, a running integrator, and
// a scalar phase-locked loop. Higher-level packages (internal/phasor,
// internal/source, internal/pipeline) build on top of these.
package modem

import "math"

// Freq is a frequency expressed in Hz together with the sample rate it is
// measured against. It is immutable once constructed.
type Freq struct {
	hz int
	sr int
}

// NewFreq builds a Freq for hz cycles per second sampled at sr samples per
// second.
func NewFreq(hz, sr int) Freq {
	return Freq{hz: hz, sr: sr}
}

// Hz returns the carrier frequency in cycles per second.
func (f Freq) Hz() int { return f.hz }

// SampleRate returns the sample rate this frequency was constructed with.
func (f Freq) SampleRate() int { return f.sr }

// AngularFreq returns the angular frequency in radians per second (2π·hz).
func (f Freq) AngularFreq() float64 {
	return 2.0 * math.Pi * float64(f.hz)
}

// SampleFreq returns the radians-per-sample increment: ω_s = 2π·hz/sr.
func (f Freq) SampleFreq() float64 {
	return f.AngularFreq() / float64(f.sr)
}
