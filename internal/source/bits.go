package source

// BitsSource wraps an in-memory bit sequence (one 0/1 value per byte) with
// a SymbolClock, slicing out bitsPerSymbol bits at each symbol boundary
// and finishing once the next group would run past the end of the input.
type BitsSource struct {
	bits          []byte
	bitsPerSymbol int
	clock         *SymbolClock
}

// NewBitsSource builds a BitsSource over bits, ticking every
// samplesPerSymbol samples and slicing bitsPerSymbol bits per symbol.
func NewBitsSource(bits []byte, samplesPerSymbol, bitsPerSymbol int) *BitsSource {
	return &BitsSource{
		bits:          bits,
		bitsPerSymbol: bitsPerSymbol,
		clock:         NewSymbolClock(samplesPerSymbol),
	}
}

func (b *BitsSource) group() ([]byte, bool) {
	start := b.clock.SymbolIndex() * b.bitsPerSymbol
	end := start + b.bitsPerSymbol
	if end > len(b.bits) {
		return nil, false
	}
	return b.bits[start:end], true
}

// Update implements Source.
func (b *BitsSource) Update(sample int) Update {
	if b.clock.Tick(sample) {
		group, ok := b.group()
		if !ok {
			return Update{Kind: Finished}
		}
		return Update{Kind: Changed, Bits: group}
	}
	group, ok := b.group()
	if !ok {
		return Update{Kind: Finished}
	}
	return Update{Kind: Unchanged, Bits: group}
}
