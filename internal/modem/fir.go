package modem

// FIRFilter is a fixed-coefficient linear convolution filter backed by a
// circular history buffer the same length as its coefficient vector. No
// allocation happens after construction.
type FIRFilter struct {
	coefs   []float64
	history []float64
	cursor  int
}

// NewFIRFilter builds a FIRFilter from a coefficient vector. The
// coefficient slice is not copied; callers must not mutate it afterward.
func NewFIRFilter(coefs []float64) *FIRFilter {
	return &FIRFilter{
		coefs:   coefs,
		history: make([]float64, len(coefs)),
	}
}

// Push records x in the circular history and returns
// y = Σ coef[k]·history[(cursor-1-k) mod N].
func (f *FIRFilter) Push(x float64) float64 {
	n := len(f.history)
	f.history[f.cursor] = x
	f.cursor = (f.cursor + 1) % n

	var y float64
	for k, c := range f.coefs {
		idx := ((f.cursor-1-k)%n + n) % n
		y += c * f.history[idx]
	}
	return y
}
