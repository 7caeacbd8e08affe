// Package schemes maps the CLI's -m scheme name to a concrete phasor.Digital
// construction, shared by every command-line binary that needs to build a
// modulator or demodulator from a scheme name. CLI glue layered above the
// core modulation pipeline, which never imports this package.
package schemes

import (
	"fmt"

	"github.com/nwillc/gomodem/internal/modem"
	"github.com/nwillc/gomodem/internal/phasor"
)

const amplitude = 1.0

// Build maps a -m scheme name to its phasor, using the baud/sample rate
// for schemes whose construction depends on them.
func Build(scheme string, rates modem.Rates) (phasor.Digital, error) {
	deviation := modem.NewFreq(rates.Baud, rates.SampleRate)

	switch scheme {
	case "bask":
		return phasor.NewBASK(amplitude), nil
	case "bpsk":
		return phasor.NewBPSK(0, amplitude), nil
	case "bfsk":
		return phasor.NewBFSK(deviation, amplitude), nil
	case "qpsk":
		return phasor.NewQPSK(0, amplitude), nil
	case "oqpsk":
		return phasor.NewOQPSK(amplitude), nil
	case "qam16":
		return phasor.NewQAM(4, 0, amplitude)
	case "qam256":
		return phasor.NewQAM(8, 0, amplitude)
	case "msk":
		return phasor.NewMSK(amplitude, rates.SamplesPerSymbol)
	case "mfsk":
		return phasor.NewMFSK(4, deviation, amplitude, phasor.NewDefaultSymbolMap(4)), nil
	case "mpsk", "16psk":
		return phasor.NewMPSK(4, 0, amplitude), nil
	case "dqpsk":
		return phasor.NewDQPSK(2, amplitude, 0, 1.5707963267948966), nil
	case "16cpfsk":
		return phasor.NewCPFSK(4, rates, amplitude, 1), nil
	case "16apsk":
		return build16APSK()
	default:
		return nil, fmt.Errorf("schemes: unknown scheme %q", scheme)
	}
}

// build16APSK lays out a 4+12 ring structure (inner ring at 0.4 radius
// for the first 4 symbols, outer ring at full radius for the remaining
// 12), the same split commonly used for 16-ary APSK constellations.
func build16APSK() (phasor.Digital, error) {
	inner, err := phasor.NewRing(0, 4, 0.4, 0)
	if err != nil {
		return nil, err
	}
	outer, err := phasor.NewRing(4, 16, 1.0, 0)
	if err != nil {
		return nil, err
	}
	return phasor.NewAPSK(amplitude, 4, []phasor.Ring{inner, outer})
}

// IsEvenOdd reports whether scheme needs its data source wrapped in an
// EvenOddOffsetSource for its Q-rail half-symbol delay.
func IsEvenOdd(scheme string) bool {
	return scheme == "oqpsk" || scheme == "msk"
}
