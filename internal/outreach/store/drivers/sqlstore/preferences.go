package sqlstore

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type preferencesRepo struct{ r *Repos }

func (p *preferencesRepo) GetPreferences(ctx context.Context, userID int64) (domain.JobPreferences, error) {
	var (
		out                           domain.JobPreferences
		titles, locations, industries string
	)
	err := p.r.queryRow(ctx, `SELECT user_id, job_titles, locations, industries, updated_at
		FROM job_preferences WHERE user_id = ?`, userID,
	).Scan(&out.UserID, &titles, &locations, &industries, &out.UpdatedAt)
	if err != nil {
		return domain.JobPreferences{}, p.r.mapErr(err)
	}

	out.JobTitles = decodeList(titles)
	out.Locations = decodeList(locations)
	out.Industries = decodeList(industries)
	out.UpdatedAt = out.UpdatedAt.UTC()
	return out, nil
}

// UpsertPreferences checks for an existing row first so it can tell the
// caller whether this was a create (201) or a replace (200).
func (p *preferencesRepo) UpsertPreferences(ctx context.Context, in domain.JobPreferences) (domain.JobPreferences, bool, error) {
	_, err := p.GetPreferences(ctx, in.UserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		_, err = p.r.exec(ctx, `INSERT INTO job_preferences
			(user_id, job_titles, locations, industries, updated_at) VALUES (?, ?, ?, ?, ?)`,
			in.UserID, encodeList(in.JobTitles), encodeList(in.Locations), encodeList(in.Industries), p.r.now(),
		)
		if err != nil {
			return domain.JobPreferences{}, false, p.r.mapErr(err)
		}
		out, err := p.GetPreferences(ctx, in.UserID)
		return out, true, err

	case err != nil:
		return domain.JobPreferences{}, false, err
	}

	_, err = p.r.exec(ctx, `UPDATE job_preferences
		SET job_titles = ?, locations = ?, industries = ?, updated_at = ? WHERE user_id = ?`,
		encodeList(in.JobTitles), encodeList(in.Locations), encodeList(in.Industries), p.r.now(), in.UserID,
	)
	if err != nil {
		return domain.JobPreferences{}, false, p.r.mapErr(err)
	}
	out, err := p.GetPreferences(ctx, in.UserID)
	return out, false, err
}
