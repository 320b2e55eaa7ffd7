package energy

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	loadBaseline   = 320.0
	loadAmplitude  = 160.0
	loadPhaseShift = 18
	loadNoiseMax   = 10.0
	loadFloor      = 100.0
)

// LoadCurve simulates the load in kWh for an hour of day in [0, 23]. Out-of-range hours are
// not rejected. The noise term makes repeated calls for the same hour differ.
func LoadCurve(hour int, rng Rand) float64 {
	wave := loadAmplitude * (1 + math.Sin(2*math.Pi*float64(hour-loadPhaseShift)/24))
	noise := rng.Float64() * loadNoiseMax
	return scalar.RoundEven(math.Max(loadFloor, loadBaseline+wave+noise), 0)
}
