package phasor

import (
	"math"

	"github.com/nwillc/gomodem/internal/modem"
)

// SymbolMap maps a symbol value to the coefficient MFSK multiplies its
// frequency deviation by.
type SymbolMap interface {
	Coef(symbol int) float64
}

// DefaultSymbolMap centers the coefficient range on zero: 2v − maxSymbol.
type DefaultSymbolMap struct {
	maxSymbol int
}

// NewDefaultSymbolMap builds a DefaultSymbolMap for the given
// bits-per-symbol.
func NewDefaultSymbolMap(bitsPerSymbol int) DefaultSymbolMap {
	return DefaultSymbolMap{maxSymbol: MaxSymbol(bitsPerSymbol)}
}

// Coef implements SymbolMap.
func (m DefaultSymbolMap) Coef(symbol int) float64 {
	return float64(2*symbol - m.maxSymbol)
}

// IncreaseSymbolMap maps each symbol to an ever-increasing, non-negative
// coefficient: 2v.
type IncreaseSymbolMap struct{}

// Coef implements SymbolMap.
func (IncreaseSymbolMap) Coef(symbol int) float64 {
	return float64(2 * symbol)
}

// MFSK implements M-ary frequency-shift keying: a phase accumulator is
// nudged at each symbol boundary so the carrier stays phase continuous as
// the instantaneous frequency steps between the map's coefficients.
type MFSK struct {
	bitsPerSymbol int
	deviation     float64
	amplitude     float64
	symbolMap     SymbolMap
	phaseOffset   float64
	curCoef       float64
}

// NewMFSK builds an MFSK phasor for bitsPerSymbol bits, frequency
// deviation dev, amplitude a, and symbol-to-coefficient map m.
func NewMFSK(bitsPerSymbol int, dev modem.Freq, amplitude float64, m SymbolMap) *MFSK {
	return &MFSK{
		bitsPerSymbol: bitsPerSymbol,
		deviation:     dev.SampleFreq(),
		amplitude:     amplitude,
		symbolMap:     m,
	}
}

// BitsPerSymbol implements Digital.
func (f *MFSK) BitsPerSymbol() int { return f.bitsPerSymbol }

func (f *MFSK) inner(n int) float64 {
	return f.curCoef*f.deviation*float64(n) + f.phaseOffset
}

// Update implements Digital.
func (f *MFSK) Update(n int, bits []byte) {
	nextCoef := f.symbolMap.Coef(BitsToInt(bits))
	f.phaseOffset += (f.curCoef - nextCoef) * f.deviation * float64(n)
	f.phaseOffset = modem.ReduceAngle(f.phaseOffset)
	f.curCoef = nextCoef
}

// I implements Digital.
func (f *MFSK) I(n int, bits []byte) float64 {
	return f.amplitude * math.Cos(f.inner(n))
}

// Q implements Digital.
func (f *MFSK) Q(n int, bits []byte) float64 {
	return f.amplitude * math.Sin(f.inner(n))
}
