package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

// DefaultActivityDays is the window used when none is asked for.
const DefaultActivityDays = 7

var activityWindows = map[int]bool{7: true, 30: true, 90: true}

type StatsService struct {
	Store store.Store

	// Now is overridable for tests
	Now func() time.Time
}

func (s *StatsService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Stats is computed fresh on every call.
func (s *StatsService) Stats(ctx context.Context, userID int64) (domain.Stats, error) {
	return s.Store.Stats().CountStats(ctx, userID)
}

// Activity returns exactly one bucket per day for the last days days, oldest
// first and ending today, with zero buckets filled in.
func (s *StatsService) Activity(ctx context.Context, userID int64, days int) ([]domain.ActivityDay, error) {
	if days == 0 {
		days = DefaultActivityDays
	}
	if !activityWindows[days] {
		return nil, invalid("days", "must be 7, 30 or 90")
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -(days - 1))

	found, err := s.Store.Stats().ActivitySince(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	byDay := make(map[time.Time]domain.ActivityDay, len(found))
	for _, d := range found {
		byDay[d.Date] = d
	}

	out := make([]domain.ActivityDay, 0, days)
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		if d, ok := byDay[day]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, domain.ActivityDay{Date: day})
	}
	return out, nil
}
