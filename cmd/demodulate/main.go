// Command demodulate reads little-endian int16 real PCM from standard
// input and writes recovered (I,Q) pairs to standard output, optionally
// reassembling them into Frames or streaming them to a constellation
// monitor.
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
	"github.com/nwillc/gomodem/internal/monitor"
	"github.com/nwillc/gomodem/internal/pipeline"
)

const (
	lowpassCutoffFraction = 0.1
	lowpassTaps           = 63
	hilbertTaps           = 63
)

func main() {
	baud := flag.Int("b", 220, "baud rate")
	carrierHz := flag.Int("c", 900, "carrier frequency in Hz")
	sampleRate := flag.Int("r", 10000, "sample rate in Hz")
	useFrame := flag.Bool("frame", false, "decision-slice the recovered bits and reassemble Frames")
	rsParity := flag.Int("rs", 0, "Reed-Solomon parity bytes per 223-byte block (requires --frame, must match the sender's -rs)")
	monitorAddr := flag.String("monitor", "", "serve a constellation scope at this address, e.g. :8080")
	flag.Parse()

	if err := run(*baud, *carrierHz, *sampleRate, *useFrame, *rsParity, *monitorAddr); err != nil {
		log.Fatalf("demodulate: %v", err)
	}
}

func run(baudRate, carrierHz, sampleRateHz int, useFrame bool, rsParity int, monitorAddr string) error {
	// The baud rate is only used for --frame's per-symbol bit decisions.
	samplesPerSymbol := 0
	if useFrame {
		rates, err := modem.NewRates(baudRate, sampleRateHz)
		if err != nil {
			return err
		}
		samplesPerSymbol = rates.SamplesPerSymbol
	}

	var hub *monitor.Hub
	if monitorAddr != "" {
		hub = monitor.NewHub()
		go func() {
			if err := monitor.Serve(monitorAddr, hub); err != nil {
				log.Printf("demodulate: monitor server stopped: %v", err)
			}
		}()
	}

	carrier := modem.NewCarrier(modem.NewFreq(carrierHz, sampleRateHz))
	pcm := &pcmReader{r: bufio.NewReader(os.Stdin)}
	analytic := pipeline.NewAnalyticSignal(pcm, pipeline.HilbertCoefficients(hilbertTaps))

	lp := func() *modem.FIRFilter {
		return modem.NewFIRFilter(pipeline.LowpassCoefficients(lowpassCutoffFraction, lowpassTaps))
	}
	demod := pipeline.NewDemodulator(carrier, lp)

	if err := demod.LockPhase(analytic); err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var bits []byte
	sampleInSymbol := 0
	for {
		i, q, ok := demod.Next(analytic)
		if !ok {
			break
		}

		if hub != nil {
			hub.Broadcast(monitor.Point{I: i, Q: q})
		}

		fmt.Fprintf(out, "i:%g\tq:%g\n", i, q)

		if useFrame {
			// Take one hard decision per symbol, at its center, rather
			// than at every oversampled output.
			if sampleInSymbol == samplesPerSymbol/2 {
				bits = append(bits, sliceBit(i))
			}
			sampleInSymbol = (sampleInSymbol + 1) % samplesPerSymbol
		}
	}

	if useFrame {
		f, err := decodeFrame(bits, rsParity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "frame: %v\n", err)
			return nil
		}
		fmt.Fprintf(os.Stderr, "frame seq=%d type=%d payload=%q\n", f.SeqNum, f.Type, f.Payload)
	}
	return nil
}

// sliceBit makes a hard decision on a recovered in-phase sample: positive
// maps to 1, non-positive to 0.
func sliceBit(i float64) byte {
	if i > 0 {
		return 1
	}
	return 0
}

// decodeFrame reassembles bits into bytes, undoes Reed-Solomon protection
// when rsParity is set, and decodes the result as a Frame. CRC and RS
// failures are returned as plain errors for the caller to report, not
// fatal conditions.
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

// pcmReader adapts a little-endian int16 PCM stream to pipeline.RealSource,
// dividing each sample by math.MaxInt16 (so -32768 maps just below -1).
type pcmReader struct {
	r *bufio.Reader
}

func (p *pcmReader) Next() (float64, bool) {
	var sample int16
	if err := binary.Read(p.r, binary.LittleEndian, &sample); err != nil {
		if err != io.EOF {
			log.Printf("demodulate: read error: %v", err)
		}
		return 0, false
	}
	return float64(sample) / math.MaxInt16, true
}
