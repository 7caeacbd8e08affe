package modem

import "math"

// pllGain is the fixed loop gain K applied to the phase error each update.
const pllGain = 0.447214

// PLL is a first-order scalar phase-locked loop tracking the offset
// between a locally generated carrier phase and a received complex
// sample.
type PLL struct {
	PhaseOffset float64
}

// NewPLL returns a PLL with zero initial offset.
func NewPLL() *PLL {
	return &PLL{}
}

// Handle updates the phase offset given the open-loop carrier phase
// carrierPhase and a complex input sample (xReal, xImag). The offset
// grows unboundedly in principle but only ever appears additively inside
// a trig call, so callers must reduce wherever they consume it.
func (p *PLL) Handle(carrierPhase, xReal, xImag float64) {
	inner := carrierPhase + p.PhaseOffset
	cReal, cImag := math.Cos(inner), math.Sin(inner)

	// x * conj(c): (xReal + i·xImag) * (cReal - i·cImag)
	prodReal := xReal*cReal + xImag*cImag
	prodImag := xImag*cReal - xReal*cImag
	err := math.Atan2(prodImag, prodReal)

	p.PhaseOffset += pllGain * err
}
