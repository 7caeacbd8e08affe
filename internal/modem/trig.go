package modem

import "math"

const twoPi = 2.0 * math.Pi

// ReduceAngle reduces a phase argument modulo 2π into [0, 2π), bounding
// floating-point error that would otherwise grow with the magnitude of x.
// Every trig call on an accumulated or sample-scaled phase in this package
// goes through this reduction first.
func ReduceAngle(x float64) float64 {
	return x - twoPi*math.Floor(x/twoPi)
}
