// Command modem-audio transmits or receives a modulated bit stream over
// a live PortAudio device instead of stdin/stdout PCM, for over-the-air
// (or over-the-speaker) use of the same modulation schemes as modulate
// and demodulate.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nwillc/gomodem/internal/audio"
	"github.com/nwillc/gomodem/internal/fec"
	"github.com/nwillc/gomodem/internal/frame"
	"github.com/nwillc/gomodem/internal/modem"
	"github.com/nwillc/gomodem/internal/phasor"
	"github.com/nwillc/gomodem/internal/pipeline"
	"github.com/nwillc/gomodem/internal/schemes"
	"github.com/nwillc/gomodem/internal/source"
)

const (
	lowpassCutoffFraction = 0.1
	lowpassTaps           = 63
	hilbertTaps           = 63
)

func main() {
	tx := flag.Bool("tx", false, "transmit")
	rx := flag.Bool("rx", false, "receive")
	listDevices := flag.Bool("list-devices", false, "list audio devices and exit")
	scheme := flag.String("m", "", "digital modulation scheme")
	analog := flag.String("n", "", "analog wrap: am or fm (tx only)")
	sampleRate := flag.Int("r", 44100, "sample rate in Hz")
	baud := flag.Int("b", 220, "baud rate")
	carrierHz := flag.Int("c", 1800, "carrier frequency in Hz")
	useFrame := flag.Bool("frame", false, "wrap stdin bytes in a Frame (tx) or reassemble Frames from recovered bits (rx)")
	rsParity := flag.Int("rs", 0, "Reed-Solomon parity bytes per 223-byte block (requires --frame, must match the sender's -rs)")
	flag.Parse()

	if err := audio.Init(); err != nil {
		log.Fatalf("modem-audio: init portaudio: %v", err)
	}
	defer audio.Terminate()

	if *listDevices {
		if err := audio.PrintDevices(); err != nil {
			log.Fatalf("modem-audio: %v", err)
		}
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		audio.Terminate()
		os.Exit(0)
	}()

	var err error
	switch {
	case *tx && *rx:
		err = fmt.Errorf("-tx and -rx are mutually exclusive")
	case *tx:
		err = runTx(*scheme, *analog, *sampleRate, *baud, *carrierHz, *useFrame, *rsParity)
	case *rx:
		err = runRx(*sampleRate, *baud, *carrierHz, *useFrame, *rsParity)
	default:
		err = fmt.Errorf("one of -tx or -rx is required")
	}
	if err != nil {
		log.Fatalf("modem-audio: %v", err)
	}
}

func runTx(scheme, analog string, sampleRateHz, baudRate, carrierHz int, useFrame bool, rsParity int) error {
	if scheme == "" {
		return fmt.Errorf("-m is required for -tx")
	}
	if rsParity > 0 && !useFrame {
		return fmt.Errorf("--rs requires --frame")
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

	var src source.Source = source.NewBitsSource(bits, rates.SamplesPerSymbol, digital.BitsPerSymbol())
	if schemes.IsEvenOdd(scheme) {
		eo, err := source.NewEvenOddOffsetSource(src, rates.SamplesPerSymbol)
		if err != nil {
			return err
		}
		src = eo
	}

	carrier := modem.NewCarrier(modem.NewFreq(carrierHz, sampleRateHz))
	dm := pipeline.NewDigitalModulator(carrier, digital, src)

	var samples []float32
	if analog == "" {
		for {
			x, ok := dm.Next()
			if !ok {
				break
			}
			samples = append(samples, float32(real(x)))
		}
	} else {
		samples, err = analogWrapSamples(dm, analog, rates, carrierHz)
		if err != nil {
			return err
		}
	}

	aio := audio.NewAudioIO(float64(sampleRateHz), audio.DefaultFramesPerBuf)
	if err := aio.OpenOutput(); err != nil {
		return err
	}
	defer aio.Close()
	if err := aio.StartOutput(); err != nil {
		return err
	}
	return aio.WriteSamples(samples)
}

// readBits prepares a bit stream for transmission: plain ASCII bits, or,
// with useFrame, stdin wrapped whole in a Frame and optionally protected
// with Reed-Solomon parity.
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

// analogWrapSamples drains dm's real output into a buffered baseband
// stream, then re-modulates it onto a fresh carrier as AM or FM.
func analogWrapSamples(dm *pipeline.DigitalModulator, analog string, rates modem.Rates, carrierHz int) ([]float32, error) {
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
			return nil, fmt.Errorf("fm wrap: %w", err)
		}
		analogPhasor = fm
	default:
		return nil, fmt.Errorf("unknown analog wrap %q", analog)
	}

	m := pipeline.NewModulator(wrapCarrier, analogPhasor)
	var samples []float32
	for {
		x, err := m.Next()
		if err == phasor.ErrFinished {
			return samples, nil
		}
		if err != nil {
			return nil, fmt.Errorf("analog wrap: %w", err)
		}
		samples = append(samples, float32(real(x)))
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

func runRx(sampleRateHz, baudRate, carrierHz int, useFrame bool, rsParity int) error {
	rates, err := modem.NewRates(baudRate, sampleRateHz)
	if err != nil {
		return err
	}

	aio := audio.NewAudioIO(float64(sampleRateHz), audio.DefaultFramesPerBuf)
	if err := aio.OpenInput(); err != nil {
		return err
	}
	defer aio.Close()
	if err := aio.StartInput(); err != nil {
		return err
	}

	src := &micSource{io: aio}
	carrier := modem.NewCarrier(modem.NewFreq(carrierHz, sampleRateHz))
	analytic := pipeline.NewAnalyticSignal(src, pipeline.HilbertCoefficients(hilbertTaps))
	lp := func() *modem.FIRFilter {
		return modem.NewFIRFilter(pipeline.LowpassCoefficients(lowpassCutoffFraction, lowpassTaps))
	}
	demod := pipeline.NewDemodulator(carrier, lp)
	if err := demod.LockPhase(analytic); err != nil {
		return err
	}

	var bits []byte
	sampleInSymbol := 0
	for {
		i, _, ok := demod.Next(analytic)
		if !ok {
			break
		}
		if !useFrame {
			fmt.Printf("i:%g\n", i)
			continue
		}
		if sampleInSymbol == rates.SamplesPerSymbol/2 {
			bits = append(bits, sliceBit(i))
		}
		sampleInSymbol = (sampleInSymbol + 1) % rates.SamplesPerSymbol
	}

	if useFrame {
		f, err := decodeFrame(bits, rsParity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "frame: %v\n", err)
			return nil
		}
		fmt.Printf("frame seq=%d type=%d payload=%q\n", f.SeqNum, f.Type, f.Payload)
	}
	return nil
}

func sliceBit(i float64) byte {
	if i > 0 {
		return 1
	}
	return 0
}

// decodeFrame reassembles bits into bytes, undoes Reed-Solomon protection
// when rsParity is set, and decodes the result as a Frame.
func decodeFrame(bits []byte, rsParity int) (*frame.Frame, error) {
	data := frame.FromBits(bits)

	if rsParity > 0 {
		rs, err := fec.NewRSEncoderCustom(fec.DefaultDataShards, rsParity)
		if err != nil {
			return nil, err
		}
		data, err = rs.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("rs decode: %w", err)
		}
	}

	return frame.Decode(data)
}

// micSource adapts AudioIO's buffered reads to pipeline.RealSource.
type micSource struct {
	io  *audio.AudioIO
	buf []float32
	pos int
}

func (m *micSource) Next() (float64, bool) {
	if m.pos >= len(m.buf) {
		chunk, err := m.io.Read()
		if err != nil {
			log.Printf("modem-audio: read error: %v", err)
			return 0, false
		}
		m.buf = chunk
		m.pos = 0
	}
	v := m.buf[m.pos]
	m.pos++
	return float64(v), true
}
