// Package source implements the data-source abstraction that drives a
// digital phasor: a symbol clock ticking every samples-per-symbol samples,
// a bit-group supplier built on top of it, and the even/odd half-symbol
// offset adapter used by OQPSK and MSK.
package source

// Kind distinguishes the three states a Source can report at a given
// sample.
type Kind int

const (
	// Changed reports a fresh symbol's bits, emitted exactly at symbol
	// boundaries.
	Changed Kind = iota
	// Unchanged reports the same bit slice as the last Changed update.
	Unchanged
	// Finished reports that no further Changed or Unchanged update will
	// ever be emitted.
	Finished
)

// Update is the per-sample report a Source makes to its caller.
type Update struct {
	Kind Kind
	Bits []byte
}

// Source produces one Update per sample, driven by its own symbol clock.
type Source interface {
	Update(sample int) Update
}

// SymbolClock emits a boundary every samplesPerSymbol calls to Tick,
// returning true exactly on the first call (fresh symbol available at
// sample 0) and then every samplesPerSymbol samples afterward.
type SymbolClock struct {
	samplesPerSymbol int
	curIdx           int
	started          bool
}

// NewSymbolClock builds a SymbolClock ticking every samplesPerSymbol
// samples.
func NewSymbolClock(samplesPerSymbol int) *SymbolClock {
	return &SymbolClock{samplesPerSymbol: samplesPerSymbol, curIdx: -1}
}

// SymbolIndex returns the index of the most recent symbol boundary seen by
// Tick.
func (c *SymbolClock) SymbolIndex() int { return c.curIdx }

// Tick reports whether sample belongs to a new symbol, updating the
// current symbol index when it does.
func (c *SymbolClock) Tick(sample int) bool {
	idx := sample / c.samplesPerSymbol
	if c.started && idx == c.curIdx {
		return false
	}
	c.curIdx = idx
	c.started = true
	return true
}
