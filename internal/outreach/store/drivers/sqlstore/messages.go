package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
)

type messagesRepo struct{ r *Repos }

const messageColumns = `id, user_id, mutual_id, employee_id, job_id, message_text, status, outcome,
	sent_date, response_date, intro_date, created_at, updated_at`

func scanMessage(s rowScanner) (domain.Message, error) {
	var (
		m                     domain.Message
		jobID                 sql.NullInt64
		sent, response, intro sql.NullTime
		status, outcome       string
	)
	err := s.Scan(&m.ID, &m.UserID, &m.MutualID, &m.EmployeeID, &jobID, &m.MessageText, &status, &outcome,
		&sent, &response, &intro, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Message{}, err
	}

	m.JobID = intPtr(jobID)
	m.Status = domain.MessageStatus(status)
	m.Outcome = domain.MessageOutcome(outcome)
	m.SentDate = timePtr(sent)
	m.ResponseDate = timePtr(response)
	m.IntroDate = timePtr(intro)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func (m *messagesRepo) CreateMessage(ctx context.Context, in domain.Message) (domain.Message, error) {
	if in.Status == "" {
		in.Status = domain.StatusDraft
	}
	if in.Outcome == "" {
		in.Outcome = domain.OutcomePending
	}

	now := m.r.now()
	id, err := m.r.insert(ctx, `INSERT INTO messages
		(user_id, mutual_id, employee_id, job_id, message_text, status, outcome,
		 sent_date, response_date, intro_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.MutualID, in.EmployeeID, nullInt(in.JobID), in.MessageText,
		string(in.Status), string(in.Outcome),
		nullTime(in.SentDate), nullTime(in.ResponseDate), nullTime(in.IntroDate), now, now,
	)
	if err != nil {
		return domain.Message{}, err
	}
	return m.GetMessage(ctx, id)
}

func (m *messagesRepo) GetMessage(ctx context.Context, id int64) (domain.Message, error) {
	msg, err := scanMessage(m.r.queryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id))
	return msg, m.r.mapErr(err)
}

func (m *messagesRepo) ListMessages(ctx context.Context, f store.MessageFilter) ([]domain.Message, error) {
	q := `SELECT ` + messageColumns + ` FROM messages WHERE 1 = 1`
	var args []any
	if f.UserID != 0 {
		q += ` AND user_id = ?`
		args = append(args, f.UserID)
	}
	if f.MutualID != 0 {
		q += ` AND mutual_id = ?`
		args = append(args, f.MutualID)
	}
	if f.JobID != 0 {
		q += ` AND job_id = ?`
		args = append(args, f.JobID)
	}
	if f.Status != "" {
		q += ` AND status = ?`
		args = append(args, string(f.Status))
	} else {
		q += ` AND status <> ?`
		args = append(args, string(domain.StatusDeleted))
	}
	q += ` ORDER BY id DESC`
	q, args = limitClause(q, args, f.Limit)

	rows, err := m.r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func (m *messagesRepo) UpdateMessage(ctx context.Context, in domain.Message) (domain.Message, error) {
	var set updateSet
	set.add("message_text", in.MessageText)
	set.add("status", string(in.Status))
	set.add("outcome", string(in.Outcome))
	set.add("sent_date", nullTime(in.SentDate))
	set.add("response_date", nullTime(in.ResponseDate))
	set.add("intro_date", nullTime(in.IntroDate))
	set.add("updated_at", m.r.now())

	if err := m.r.apply(ctx, "messages", in.ID, set); err != nil {
		return domain.Message{}, err
	}
	return m.GetMessage(ctx, in.ID)
}
