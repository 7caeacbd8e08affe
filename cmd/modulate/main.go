// Command modulate reads an ASCII bit stream (or, with --frame, raw
// bytes) from standard input and writes modulated PCM samples to
// standard output.
package main

import (
	"bufio"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/nwillc/gomodem/internal/fec"
	"github.com/nwillc/gomodem/internal/frame"
	"github.com/nwillc/gomodem/internal/modem"
	"github.com/nwillc/gomodem/internal/phasor"
	"github.com/nwillc/gomodem/internal/pipeline"
	"github.com/nwillc/gomodem/internal/schemes"
	"github.com/nwillc/gomodem/internal/source"
)

func main() {
	scheme := flag.String("m", "", "digital modulation scheme (required)")
	analog := flag.String("n", "", "analog wrap: am or fm")
	sampleRate := flag.Int("r", 10000, "sample rate in Hz")
	baud := flag.Int("b", 220, "baud rate")
	carrierHz := flag.Int("c", 900, "carrier frequency in Hz")
	preambleCycles := flag.Int("p", 0, "cycles of unmodulated carrier to emit before data")
	iq := flag.Bool("iq", false, "output interleaved float32 I/Q instead of rotated passband (with -n: the rotated AM/FM sample's real and imaginary parts)")
	useFrame := flag.Bool("frame", false, "treat stdin as raw bytes wrapped in a Frame rather than ASCII bits")
	rsParity := flag.Int("rs", 0, "Reed-Solomon parity bytes per 223-byte block (requires --frame)")
	flag.Parse()

	if err := run(*scheme, *analog, *sampleRate, *baud, *carrierHz, *preambleCycles, *iq, *useFrame, *rsParity); err != nil {
		log.Fatalf("modulate: %v", err)
	}
}

func run(scheme, analog string, sampleRateHz, baudRate, carrierHz, preambleCycles int, iq, useFrame bool, rsParity int) error {
	if scheme == "" {
		return fmt.Errorf("-m is required")
	}
	if rsParity > 0 && !useFrame {
		return fmt.Errorf("--rs requires --frame")
	}
	if carrierHz*2 >= sampleRateHz {
		return fmt.Errorf("carrier %d Hz violates Nyquist at sample rate %d Hz", carrierHz, sampleRateHz)
	}
	if preambleCycles > 0 && sampleRateHz%carrierHz != 0 {
		return fmt.Errorf("preamble requested but sample rate %d is not a multiple of carrier %d", sampleRateHz, carrierHz)
	}

	rates, err := modem.NewRates(baudRate, sampleRateHz)
	if err != nil {
		return err
	}

	bits, err := readBits(os.Stdin, useFrame, rsParity)
	if err != nil {
		return err
	}

	digital, err := schemes.Build(scheme, rates)
	if err != nil {
		return err
	}

	carrier := modem.NewCarrier(modem.NewFreq(carrierHz, sampleRateHz))
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if preambleCycles > 0 {
		preambleSamples := sampleRateHz/carrierHz*preambleCycles - 1
		raw := phasor.NewRaw(1)
		preamble := pipeline.NewModulator(carrier, raw)
		for n := 0; n < preambleSamples; n++ {
			x, err := preamble.Next()
			if err != nil {
				return fmt.Errorf("preamble: %w", err)
			}
			if iq {
				x = complex(raw.Amplitude, 0)
			}
			if err := writeSample(out, x, iq); err != nil {
				return err
			}
		}
	}

	var src source.Source = source.NewBitsSource(bits, rates.SamplesPerSymbol, digital.BitsPerSymbol())
	if schemes.IsEvenOdd(scheme) {
		eo, err := source.NewEvenOddOffsetSource(src, rates.SamplesPerSymbol)
		if err != nil {
			return err
		}
		src = eo
	}

	dm := pipeline.NewDigitalModulator(carrier, digital, src)

	if analog == "" {
		for {
			x, ok := dm.Next()
			if !ok {
				return nil
			}
			if iq {
				i, q := dm.LastIQ()
				x = complex(i, q)
			}
			if err := writeSample(out, x, iq); err != nil {
				return err
			}
		}
	}
	return runAnalogWrap(out, dm, analog, rates, carrierHz, iq)
}

// runAnalogWrap drains dm's real output into a buffered baseband stream,
// then re-modulates it onto a fresh carrier as AM or FM. With iq set it
// writes the real and imaginary parts of each carrier-rotated AM/FM
// sample, not the AM/FM phasor's unrotated (I,Q).
func runAnalogWrap(out *bufio.Writer, dm *pipeline.DigitalModulator, analog string, rates modem.Rates, carrierHz int, iq bool) error {
	var baseband []float64
	for {
		x, ok := dm.Next()
		if !ok {
			break
		}
		baseband = append(baseband, real(x))
	}

	stream := &bufferStream{vals: baseband}
	wrapCarrier := modem.NewCarrier(modem.NewFreq(carrierHz, rates.SampleRate))
	dev := modem.NewFreq(rates.Baud, rates.SampleRate)

	var analogPhasor phasor.Analog
	switch analog {
	case "am":
		analogPhasor = phasor.NewAM(stream, 1, 1)
	case "fm":
		fm, err := phasor.NewFM(stream, 1, dev)
		if err != nil {
			return fmt.Errorf("fm wrap: %w", err)
		}
		analogPhasor = fm
	default:
		return fmt.Errorf("unknown analog wrap %q", analog)
	}

	m := pipeline.NewModulator(wrapCarrier, analogPhasor)
	for {
		x, err := m.Next()
		if err == phasor.ErrFinished {
			return nil
		}
		if err != nil {
			return fmt.Errorf("analog wrap: %w", err)
		}
		if err := writeSample(out, x, iq); err != nil {
			return err
		}
	}
}

type bufferStream struct {
	vals []float64
	pos  int
}

func (b *bufferStream) Next() (float64, bool) {
	if b.pos >= len(b.vals) {
		return 0, false
	}
	v := b.vals[b.pos]
	b.pos++
	return v, true
}

func readBits(r io.Reader, useFrame bool, rsParity int) ([]byte, error) {
	if !useFrame {
		return source.ReadASCIIBits(r)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	encoded := frame.NewDataFrame(0, payload).Encode()
	if rsParity > 0 {
		rs, err := fec.NewRSEncoderCustom(fec.DefaultDataShards, rsParity)
		if err != nil {
			return nil, err
		}
		encoded, err = rs.Encode(encoded)
		if err != nil {
			return nil, fmt.Errorf("rs encode: %w", err)
		}
	}
	return frame.ToBits(encoded), nil
}

func writeSample(w io.Writer, x complex128, iq bool) error {
	if iq {
		if err := binary.Write(w, binary.LittleEndian, float32(real(x))); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, float32(imag(x)))
	}
	sample := int16(math.Round(real(x) * math.MaxInt16))
	return binary.Write(w, binary.LittleEndian, sample)
}
