package pipeline

import (
	"fmt"
	"math"

	"github.com/nwillc/gomodem/internal/modem"
)

// LockSamples is the number of leading input samples the Demodulator
// consumes to pull its PLL into lock before any (I,Q) output is trusted.
const LockSamples = 64

// ComplexSource supplies the analytic (Hilbert-filtered) input signal a
// Demodulator consumes.
type ComplexSource interface {
	Next() (complex128, bool)
}

// Demodulator mixes a complex analytic input signal with a locally
// generated, PLL-locked carrier and recovers the baseband (I,Q) stream
// through a pair of independent lowpass filters.
type Demodulator struct {
	carrier *modem.Carrier
	pll     *modem.PLL
	lpi     *modem.FIRFilter
	lpq     *modem.FIRFilter
}

// NewDemodulator builds a Demodulator over the given carrier, calling lp
// twice to build two independent lowpass filter instances (I and Q must
// not share history).
func NewDemodulator(c *modem.Carrier, lp func() *modem.FIRFilter) *Demodulator {
	return &Demodulator{
		carrier: c,
		pll:     modem.NewPLL(),
		lpi:     lp(),
		lpq:     lp(),
	}
}

// LockPhase consumes LockSamples samples from sig to pull the PLL into
// lock; its output is discarded. It returns an error if sig ends early.
func (d *Demodulator) LockPhase(sig ComplexSource) error {
	for i := 0; i < LockSamples; i++ {
		x, ok := sig.Next()
		if !ok {
			return fmt.Errorf("pipeline: input ended during phase lock (%d/%d samples)", i, LockSamples)
		}
		d.pll.Handle(d.carrier.Advance(), real(x), imag(x))
	}
	return nil
}

// Next consumes one sample from sig and returns the recovered (I,Q)
// pair. It reports false once sig ends.
func (d *Demodulator) Next(sig ComplexSource) (i, q float64, ok bool) {
	x, ok := sig.Next()
	if !ok {
		return 0, 0, false
	}

	theta := modem.ReduceAngle(d.carrier.Advance() + d.pll.PhaseOffset)
	re := real(x)

	i = 2 * d.lpi.Push(re*math.Cos(theta))
	q = 2 * d.lpq.Push(re*-math.Sin(theta))
	return i, q, true
}
