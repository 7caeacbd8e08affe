package pipeline

import "github.com/nwillc/gomodem/internal/modem"

// RealSource supplies the raw real PCM samples a Demodulator's analytic
// front end consumes.
type RealSource interface {
	Next() (float64, bool)
}

// AnalyticSignal turns a real sample stream into a complex analytic
// signal by running it through a Hilbert transformer for the imaginary
// rail and a matched delay line for the real rail, so both stay time
// aligned despite the Hilbert filter's group delay.
type AnalyticSignal struct {
	src     RealSource
	hilbert *modem.FIRFilter
	delay   []float64
	pos     int
}

// NewAnalyticSignal builds an AnalyticSignal over src using the given
// Hilbert transformer coefficients (see HilbertCoefficients).
func NewAnalyticSignal(src RealSource, hilbertCoefs []float64) *AnalyticSignal {
	return &AnalyticSignal{
		src:     src,
		hilbert: modem.NewFIRFilter(hilbertCoefs),
		delay:   make([]float64, len(hilbertCoefs)/2),
	}
}

// Next implements ComplexSource.
func (a *AnalyticSignal) Next() (complex128, bool) {
	x, ok := a.src.Next()
	if !ok {
		return 0, false
	}

	im := a.hilbert.Push(x)

	n := len(a.delay)
	re := a.delay[a.pos]
	a.delay[a.pos] = x
	a.pos = (a.pos + 1) % n

	return complex(re, im), true
}
