package source

import "fmt"

// EvenOddOffsetSource wraps a 2-bit Source and delays its second (Q) bit
// by half a symbol period relative to the first (I) bit, the half-symbol
// offset OQPSK and MSK are built on. At each full-symbol boundary it
// refreshes bit 0 from the freshly arrived symbol while keeping the
// previous bit 1; at the following half-symbol boundary it refreshes bit
// 1 from that same symbol. All other samples report Unchanged.
type EvenOddOffsetSource struct {
	inner      Source
	halfPeriod int
	fullPeriod int

	out      [2]byte
	pending  [2]byte
	finished bool
}

// NewEvenOddOffsetSource wraps inner, which must yield 2-bit groups, with
// a half-clock derived from samplesPerSymbol. It returns an error if
// samplesPerSymbol is not even, since the adapter cannot form a half
// period otherwise.
func NewEvenOddOffsetSource(inner Source, samplesPerSymbol int) (*EvenOddOffsetSource, error) {
	if samplesPerSymbol%2 != 0 {
		return nil, fmt.Errorf("source: EvenOddOffsetSource requires an even samples-per-symbol, got %d", samplesPerSymbol)
	}
	return &EvenOddOffsetSource{
		inner:      inner,
		halfPeriod: samplesPerSymbol / 2,
		fullPeriod: samplesPerSymbol,
	}, nil
}

// Update implements Source.
func (e *EvenOddOffsetSource) Update(sample int) Update {
	if e.finished {
		return Update{Kind: Finished}
	}

	mod := sample % e.fullPeriod
	switch mod {
	case 0:
		u := e.inner.Update(sample)
		switch u.Kind {
		case Finished:
			e.finished = true
			return Update{Kind: Finished}
		case Changed:
			e.pending[0], e.pending[1] = u.Bits[0], u.Bits[1]
		}
		e.out[0] = e.pending[0]
		return Update{Kind: Changed, Bits: e.out[:]}
	case e.halfPeriod:
		e.out[1] = e.pending[1]
		return Update{Kind: Changed, Bits: e.out[:]}
	default:
		return Update{Kind: Unchanged, Bits: e.out[:]}
	}
}
