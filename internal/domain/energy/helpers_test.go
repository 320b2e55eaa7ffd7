package energy

import (
	"io"
	"log/slog"
	"time"
)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type recordingObserver struct {
	profiles []int
}

func (o *recordingObserver) ObserveProfile(cleanerHours int) {
	o.profiles = append(o.profiles, cleanerHours)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustParse(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return ts
}
