package sqlstore

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
)

type statsRepo struct{ r *Repos }

func (s *statsRepo) CountStats(ctx context.Context, userID int64) (domain.Stats, error) {
	out := domain.Stats{
		ByStatus:  map[domain.MessageStatus]int{},
		ByOutcome: map[domain.MessageOutcome]int{},
	}

	if err := s.r.queryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE user_id = ?`, userID).Scan(&out.JobsCount); err != nil {
		return domain.Stats{}, err
	}
	if err := s.r.queryRow(ctx, `SELECT COUNT(*) FROM mutuals WHERE user_id = ?`, userID).Scan(&out.MutualsCount); err != nil {
		return domain.Stats{}, err
	}

	rows, err := s.r.query(ctx, `SELECT status, outcome, COUNT(*) FROM messages
		WHERE user_id = ? AND status <> ? GROUP BY status, outcome`, userID, string(domain.StatusDeleted))
	if err != nil {
		return domain.Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status, outcome string
			n               int
		)
		if err := rows.Scan(&status, &outcome, &n); err != nil {
			return domain.Stats{}, err
		}

		st := domain.MessageStatus(status)
		oc := domain.MessageOutcome(outcome)
		out.ByStatus[st] += n
		out.ByOutcome[oc] += n

		if st.CountsAsSent() {
			out.MessagesSentCount += n
		}
		if st == domain.StatusResponseReceived {
			out.ResponsesCount += n
		}
		switch oc {
		case domain.OutcomeIntroMade:
			out.IntroductionsMadeCount += n
		case domain.OutcomeInterview:
			out.InterviewsCount += n
		}
	}
	return out, rows.Err()
}

// ActivitySince buckets in Go rather than SQL, date functions are the one
// thing sqlite and postgres really do not agree on.
func (s *statsRepo) ActivitySince(ctx context.Context, userID int64, since time.Time) ([]domain.ActivityDay, error) {
	since = since.UTC()
	rows, err := s.r.query(ctx, `SELECT sent_date, response_date, intro_date FROM messages
		WHERE user_id = ? AND status <> ?
		  AND (sent_date >= ? OR response_date >= ? OR intro_date >= ?)`,
		userID, string(domain.StatusDeleted), since, since, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := map[time.Time]*domain.ActivityDay{}
	bucket := func(nt sql.NullTime) *domain.ActivityDay {
		if !nt.Valid || nt.Time.Before(since) {
			return nil
		}
		t := nt.Time.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		d, ok := days[day]
		if !ok {
			d = &domain.ActivityDay{Date: day}
			days[day] = d
		}
		return d
	}

	for rows.Next() {
		var sent, response, intro sql.NullTime
		if err := rows.Scan(&sent, &response, &intro); err != nil {
			return nil, err
		}
		if d := bucket(sent); d != nil {
			d.Sent++
		}
		if d := bucket(response); d != nil {
			d.Responses++
		}
		if d := bucket(intro); d != nil {
			d.Intros++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.ActivityDay, 0, len(days))
	for _, d := range days {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
