package energy

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/yanqian/equigrid-api/pkg/util"
)

// BuildSeries generates the trailing 24 hourly points ending at the hour containing now,
// oldest first.
func BuildSeries(now time.Time, rng Rand) []EnergyPoint {
	series := make([]EnergyPoint, 0, SeriesLength)
	for i := 0; i < SeriesLength; i++ {
		t := seriesHour(now, i)
		x := float64(i)
		carbon := 0.25 + 0.08*math.Sin(x/3) + rng.Float64()*0.02
		price := 9 + 2.5*math.Cos(x/2.8) + rng.Float64()*0.5
		load := LoadCurve(t.Hour(), rng)

		series = append(series, EnergyPoint{
			Hour:   FormatHour(t),
			Carbon: scalar.RoundEven(carbon, 3),
			Price:  scalar.RoundEven(price, 2),
			Load:   &load,
		})
	}
	return series
}

// seriesHour is the start of the i-th hour of the window ending at the hour containing now.
func seriesHour(now time.Time, i int) time.Time {
	return util.TruncateToHour(now).Add(-time.Duration(SeriesLength-1-i) * time.Hour)
}

// FormatHour renders an hour timestamp as ISO-8601 in UTC with a trailing Z.
func FormatHour(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}
