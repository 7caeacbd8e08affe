package phasor

import (
	"math"

	"github.com/nwillc/gomodem/internal/modem"
)

// CPFSK implements coherent phase frequency-shift keying: the symbol value
// scales a fixed frequency deviation directly, with no accumulated phase
// state across symbols.
type CPFSK struct {
	bitsPerSymbol int
	freq          float64
	amplitude     float64
}

// NewCPFSK builds a CPFSK phasor for bitsPerSymbol bits at amplitude a,
// with deviation index dev scaling half the baud rate under rates.
func NewCPFSK(bitsPerSymbol int, rates modem.Rates, amplitude float64, dev int) *CPFSK {
	f := modem.NewFreq(dev*rates.Baud/2, rates.SampleRate)
	return &CPFSK{
		bitsPerSymbol: bitsPerSymbol,
		freq:          f.SampleFreq(),
		amplitude:     amplitude,
	}
}

// BitsPerSymbol implements Digital.
func (c *CPFSK) BitsPerSymbol() int { return c.bitsPerSymbol }

// Update implements Digital; CPFSK has no internal state to advance.
func (c *CPFSK) Update(n int, bits []byte) {}

func (c *CPFSK) coef(v int) float64 {
	return 2.0 * float64(v)
}

func (c *CPFSK) inner(bits []byte, n int) float64 {
	return c.coef(BitsToInt(bits)) * c.freq * float64(n)
}

// I implements Digital.
func (c *CPFSK) I(n int, bits []byte) float64 {
	return c.amplitude * math.Cos(c.inner(bits, n))
}

// Q implements Digital.
func (c *CPFSK) Q(n int, bits []byte) float64 {
	return c.amplitude * math.Sin(c.inner(bits, n))
}
