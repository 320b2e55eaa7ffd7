package energy

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/equigrid-api/pkg/errors"
	"github.com/yanqian/equigrid-api/pkg/util"
)

// Service exposes the synthetic zone energy profile.
type Service interface {
	Zone(ctx context.Context, zoneID string) (ZoneResponse, error)
	CleanerHours(ctx context.Context, zoneID string) (CleanerHoursResponse, error)
}

// ProfileObserver is notified once per generated profile.
type ProfileObserver interface {
	ObserveProfile(cleanerHours int)
}

type service struct {
	rng      Rand
	clock    util.Clock
	observer ProfileObserver
	logger   *slog.Logger
}

// NewService wires up the energy domain.
func NewService(rng Rand, clock util.Clock, observer ProfileObserver, logger *slog.Logger) Service {
	return &service{
		rng:      rng,
		clock:    clock,
		observer: observer,
		logger:   logger.With("component", "energy.service"),
	}
}

// Zone builds a fresh profile. The zone identifier is echoed and does not influence the
// generated values.
func (s *service) Zone(ctx context.Context, zoneID string) (ZoneResponse, error) {
	if err := ctx.Err(); err != nil {
		return ZoneResponse{}, apperrors.Wrap(apperrors.CodeRequestCanceled, "request canceled before profile generation", err)
	}

	now := s.clock.Now().UTC()
	series := BuildSeries(now, s.rng)
	latest := series[len(series)-1]
	cleaner := CleanerHours(series)

	// load_kwh is a second, independently noised sample for the current hour.
	resp := ZoneResponse{
		ZoneID:           zoneID,
		LoadKWh:          LoadCurve(now.Hour(), s.rng),
		CarbonIntensity:  latest.Carbon,
		AQI:              placeholderAQI,
		PriceCentsPerKWh: latest.Price,
		Series:           series,
		CleanerHoursISO:  cleaner,
	}
	s.record(zoneID, len(series), len(cleaner))
	return resp, nil
}

func (s *service) CleanerHours(ctx context.Context, zoneID string) (CleanerHoursResponse, error) {
	if err := ctx.Err(); err != nil {
		return CleanerHoursResponse{}, apperrors.Wrap(apperrors.CodeRequestCanceled, "request canceled before profile generation", err)
	}

	now := s.clock.Now()
	series := BuildSeries(now, s.rng)
	idx := cleanerIndices(series)
	hours := make([]CleanerHour, 0, len(idx))
	for _, i := range idx {
		hours = append(hours, CleanerHour{Hour: series[i].Hour, Label: HourLabel(seriesHour(now, i))})
	}
	s.record(zoneID, len(series), len(hours))
	return CleanerHoursResponse{ZoneID: zoneID, CleanerHours: hours}, nil
}

func (s *service) record(zoneID string, points, cleaner int) {
	if s.observer != nil {
		s.observer.ObserveProfile(cleaner)
	}
	s.logger.Debug("zone profile generated", "zone_id", zoneID, "points", points, "cleaner_hours", cleaner)
}
