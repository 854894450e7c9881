package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

const maxPreferenceEntries = 20

type PreferenceService struct {
	Store store.Store
}

func (s *PreferenceService) Get(ctx context.Context, userID int64) (domain.JobPreferences, error) {
	p, err := s.Store.Preferences().GetPreferences(ctx, userID)
	return p, mapStoreErr(err)
}

// Save replaces the preferences wholesale and reports whether the row was new.
func (s *PreferenceService) Save(ctx context.Context, userID int64, titles, locations, industries []string) (domain.JobPreferences, bool, error) {
	in := domain.JobPreferences{
		UserID:     userID,
		JobTitles:  cleanList(titles),
		Locations:  cleanList(locations),
		Industries: cleanList(industries),
	}

	var v validator
	v.check(len(in.JobTitles) <= maxPreferenceEntries, "jobTitles", "at most 20 entries")
	v.check(len(in.Locations) <= maxPreferenceEntries, "locations", "at most 20 entries")
	v.check(len(in.Industries) <= maxPreferenceEntries, "industries", "at most 20 entries")
	if err := v.err(); err != nil {
		return domain.JobPreferences{}, false, err
	}

	p, created, err := s.Store.Preferences().UpsertPreferences(ctx, in)
	return p, created, mapStoreErr(err)
}

// cleanList trims entries and drops blanks and case-insensitive duplicates.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
