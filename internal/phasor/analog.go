package phasor

import (
	"math"

	"github.com/nwillc/gomodem/internal/modem"
)

// Raw emits a constant-amplitude carrier forever: (amplitude, 0).
type Raw struct {
	Amplitude float64
}

// NewRaw builds a Raw phasor at the given amplitude.
func NewRaw(amplitude float64) *Raw {
	return &Raw{Amplitude: amplitude}
}

// Next implements Analog.
func (r *Raw) Next(n int) (float64, float64, error) {
	return r.Amplitude, 0, nil
}

// Stream is a finite source of real samples, used to drive AM and FM.
type Stream interface {
	Next() (float64, bool)
}

// AM implements unsuppressed-carrier DSB-AM: I = a/2 + (m/2)·x(n), Q = 0,
// where x is the next sample from the driving stream. It finishes when
// the stream does.
type AM struct {
	src             Stream
	amplitude       float64
	modulationIndex float64
}

// NewAM builds an AM phasor at carrier amplitude a and modulation index m
// driven by src.
func NewAM(src Stream, a, m float64) *AM {
	return &AM{src: src, amplitude: a, modulationIndex: m}
}

// Next implements Analog.
func (a *AM) Next(n int) (float64, float64, error) {
	x, ok := a.src.Next()
	if !ok {
		return 0, 0, ErrFinished
	}
	return a.amplitude/2 + (a.modulationIndex/2)*x, 0, nil
}

// FM implements frequency modulation driven by the running integral of a
// baseband stream: u = Δω·∫x; I = (a/2)·cos(u), Q = (a/2)·sin(u). It
// finishes when the driving stream does.
type FM struct {
	src       Stream
	integ     *modem.Integrator
	amplitude float64
	deviation float64
}

// NewFM builds an FM phasor at carrier amplitude a and frequency
// deviation dev, integrating src. It consumes src's first sample to seed
// the integrator.
func NewFM(src Stream, a float64, dev modem.Freq) (*FM, error) {
	x0, ok := src.Next()
	if !ok {
		return nil, ErrFinished
	}
	ig, err := modem.NewIntegrator(x0, a)
	if err != nil {
		return nil, err
	}
	return &FM{
		src:       src,
		integ:     ig,
		amplitude: a / 2,
		deviation: dev.SampleFreq(),
	}, nil
}

// Next implements Analog.
func (f *FM) Next(n int) (float64, float64, error) {
	x, ok := f.src.Next()
	if !ok {
		return 0, 0, ErrFinished
	}
	s, err := f.integ.Next(x)
	if err != nil {
		return 0, 0, err
	}
	u := f.deviation * s
	return f.amplitude * math.Cos(u), f.amplitude * math.Sin(u), nil
}
