package modem

// Carrier is a sample-indexed phase source: each call to Advance returns
// the reduced phase for the current sample and then moves to the next
// one. Carriers are resumable — a caller may use one to emit a preamble
// and later hand it to a different consumer without perturbing phase
// continuity, since all state is the sample counter itself.
type Carrier struct {
	sampleFreq float64
	n          uint64
}

// NewCarrier builds a Carrier from a Freq.
func NewCarrier(f Freq) *Carrier {
	return &Carrier{sampleFreq: f.SampleFreq()}
}

// Advance returns θ(n) = reduce(ω_s·n) for the current sample n and then
// increments the sample counter. The counter wraps modulo the native
// integer width; reduction is applied before any trig call, independent
// of how large n has grown.
func (c *Carrier) Advance() float64 {
	theta := ReduceAngle(c.sampleFreq * float64(c.n))
	c.n++
	return theta
}

// SampleIndex returns the current sample counter without advancing it, so
// a phasor can compute n - start for a symbol-relative index.
func (c *Carrier) SampleIndex() uint64 {
	return c.n
}
