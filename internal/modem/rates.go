package modem

import "fmt"

// Rates bundles the symbol (baud) rate and sample rate of a pipeline and
// derives the integer number of samples per symbol. Every symbol clock in
// the package is built from a Rates value.
type Rates struct {
	Baud              int
	SampleRate        int
	SamplesPerSymbol  int
}

// NewRates builds a Rates from a baud rate and sample rate. It returns an
// error if the sample rate is not an integer multiple of the baud rate,
// since every symbol clock in the pipeline assumes sr % baud == 0.
func NewRates(baud, sampleRate int) (Rates, error) {
	if baud <= 0 || sampleRate <= 0 {
		return Rates{}, fmt.Errorf("modem: baud and sample rate must be positive, got baud=%d sr=%d", baud, sampleRate)
	}
	if sampleRate%baud != 0 {
		return Rates{}, fmt.Errorf("modem: sample rate %d is not a multiple of baud rate %d", sampleRate, baud)
	}
	return Rates{
		Baud:             baud,
		SampleRate:       sampleRate,
		SamplesPerSymbol: sampleRate / baud,
	}, nil
}
