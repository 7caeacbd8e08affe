// Package pipeline composes the carrier, phasor, and data-source
// primitives into complete modulate/demodulate sample streams: analog
// Modulator, symbol-synchronized DigitalModulator, and the coherent
// Demodulator.
package pipeline

import (
	"math"

	"github.com/nwillc/gomodem/internal/modem"
	"github.com/nwillc/gomodem/internal/phasor"
	"github.com/nwillc/gomodem/internal/source"
)

// Modulator composes a Carrier and an analog Phasor into a passband
// sample stream: at each step it rotates the phasor's (I,Q) pair by the
// carrier's current phase.
type Modulator struct {
	carrier *modem.Carrier
	phasor  phasor.Analog
}

// NewModulator builds a Modulator over the given carrier and phasor.
func NewModulator(c *modem.Carrier, p phasor.Analog) *Modulator {
	return &Modulator{carrier: c, phasor: p}
}

// Next produces the next complex passband sample. It returns
// phasor.ErrFinished when the underlying phasor's driving stream ends,
// or any other error as a fatal numeric condition.
func (m *Modulator) Next() (complex128, error) {
	n := int(m.carrier.SampleIndex())
	theta := m.carrier.Advance()

	i, q, err := m.phasor.Next(n)
	if err != nil {
		return 0, err
	}

	re := i*math.Cos(theta) - q*math.Sin(theta)
	im := i*math.Sin(theta) + q*math.Cos(theta)
	return complex(re, im), nil
}

// DigitalModulator composes a Carrier, a digital Phasor, and a data
// Source into a passband sample stream synchronized to the source's
// symbol clock.
type DigitalModulator struct {
	carrier     *modem.Carrier
	phasor      phasor.Digital
	source      source.Source
	startSample uint64
	curBits     []byte
	lastI       float64
	lastQ       float64
}

// NewDigitalModulator builds a DigitalModulator. The carrier's sample
// index at construction time fixes the source's relative sample zero, so
// any preamble already emitted on the carrier does not perturb symbol
// alignment.
func NewDigitalModulator(c *modem.Carrier, p phasor.Digital, src source.Source) *DigitalModulator {
	return &DigitalModulator{
		carrier:     c,
		phasor:      p,
		source:      src,
		startSample: c.SampleIndex() + 1,
	}
}

// Next produces the next complex passband sample and reports whether the
// stream continues. It returns false once the data source finishes.
func (d *DigitalModulator) Next() (complex128, bool) {
	theta := d.carrier.Advance()
	nRel := int(d.carrier.SampleIndex() - d.startSample)

	u := d.source.Update(nRel)
	switch u.Kind {
	case source.Finished:
		return 0, false
	case source.Changed:
		d.phasor.Update(int(d.carrier.SampleIndex()), u.Bits)
		d.curBits = u.Bits
	case source.Unchanged:
		d.curBits = u.Bits
	}

	n := int(d.carrier.SampleIndex())
	i, q := d.phasor.I(n, d.curBits), d.phasor.Q(n, d.curBits)
	d.lastI, d.lastQ = i, q

	re := i*math.Cos(theta) - q*math.Sin(theta)
	im := i*math.Sin(theta) + q*math.Cos(theta)
	return complex(re, im), true
}

// LastIQ returns the pre-rotation baseband (I,Q) pair computed by the
// most recent call to Next, for callers that want the raw constellation
// point rather than the carrier-rotated passband sample.
func (d *DigitalModulator) LastIQ() (float64, float64) {
	return d.lastI, d.lastQ
}
