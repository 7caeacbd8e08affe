package modem

import (
	"fmt"
	"math"
)

// Integrator computes a trapezoidal-like running integral of a bounded
// real signal, used to drive FM phase accumulation. Construction consumes
// one sample to seed the previous reduced angle.
type Integrator struct {
	amplitude float64
	prev      float64
	accum     float64
}

// NewIntegrator seeds the integrator with the first sample of a bounded
// signal of amplitude a (|x0/a| must not exceed 1 after truncation to 4
// decimal places).
func NewIntegrator(x0, a float64) (*Integrator, error) {
	ig := &Integrator{amplitude: a}
	theta, err := ig.angle(x0)
	if err != nil {
		return nil, err
	}
	ig.prev = theta
	return ig, nil
}

func (ig *Integrator) angle(x float64) (float64, error) {
	xp := math.Trunc(x/ig.amplitude*10000) / 10000
	if xp < -1 || xp > 1 {
		return 0, fmt.Errorf("modem: integrator input %v out of range [-1, 1] after scaling", xp)
	}
	return math.Acos(xp), nil
}

// Next consumes the next sample x and returns the updated running
// integral. It returns an error if |x/amplitude| exceeds 1 after
// truncation to 4 decimal places — an input-truncation bug condition the
// caller should treat as fatal.
func (ig *Integrator) Next(x float64) (float64, error) {
	theta, err := ig.angle(x)
	if err != nil {
		return 0, err
	}
	xp := math.Trunc(x/ig.amplitude*10000) / 10000

	ig.accum += xp * math.Abs(theta-ig.prev)
	ig.prev = theta
	return ig.accum, nil
}
