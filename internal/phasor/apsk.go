package phasor

import (
	"fmt"
	"math"
)

// Ring describes one amplitude ring of an APSK constellation: the
// half-open range of symbol values it covers, its radius as a fraction of
// the phasor's maximum amplitude, and the phase offset applied to its
// first symbol.
type Ring struct {
	Start, End int
	Radius     float64
	Phase      float64
}

// NewRing builds a Ring covering symbols [start, end) at the given radius
// (0..1) and phase offset in radians.
func NewRing(start, end int, radius, phase float64) (Ring, error) {
	if radius < 0 || radius > 1 {
		return Ring{}, fmt.Errorf("phasor: APSK ring radius %v out of range [0, 1]", radius)
	}
	return Ring{Start: start, End: end, Radius: radius, Phase: phase}, nil
}

func (r Ring) contains(symbol int) bool {
	return symbol >= r.Start && symbol < r.End
}

// APSK implements amplitude and phase-shift keying: the symbol space is
// partitioned into concentric Rings, each ring's symbols equally spaced
// in phase around it.
type APSK struct {
	amplitude     float64
	bitsPerSymbol int
	rings         []Ring
}

// NewAPSK builds an APSK phasor with the given maximum amplitude and
// bits-per-symbol; rings must be given in ascending symbol order and must
// tile 0..2^bitsPerSymbol without gaps or overlaps.
func NewAPSK(amplitude float64, bitsPerSymbol int, rings []Ring) (*APSK, error) {
	prev := 0
	for _, r := range rings {
		if r.Start != prev {
			return nil, fmt.Errorf("phasor: APSK rings must tile the symbol space contiguously starting at 0")
		}
		prev = r.End
	}
	if prev != MaxSymbol(bitsPerSymbol)+1 {
		return nil, fmt.Errorf("phasor: APSK rings must cover exactly the %d symbols of a %d-bit symbol", MaxSymbol(bitsPerSymbol)+1, bitsPerSymbol)
	}
	return &APSK{amplitude: amplitude, bitsPerSymbol: bitsPerSymbol, rings: rings}, nil
}

// BitsPerSymbol implements Digital.
func (a *APSK) BitsPerSymbol() int { return a.bitsPerSymbol }

// Update implements Digital; APSK has no internal state to advance.
func (a *APSK) Update(n int, bits []byte) {}

func (a *APSK) common(symbol int) (radius, phase float64) {
	for _, r := range a.rings {
		if r.contains(symbol) {
			return r.Radius, 2.0*math.Pi*float64(symbol-r.Start)/float64(r.End-r.Start) + r.Phase
		}
	}
	panic("phasor: APSK symbol out of range of any ring")
}

// I implements Digital.
func (a *APSK) I(n int, bits []byte) float64 {
	r, theta := a.common(BitsToInt(bits))
	return a.amplitude * r * math.Cos(theta)
}

// Q implements Digital.
func (a *APSK) Q(n int, bits []byte) float64 {
	r, theta := a.common(BitsToInt(bits))
	return a.amplitude * r * math.Sin(theta)
}
