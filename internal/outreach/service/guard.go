package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/mutuals/internal/outreach/domain"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"
)

// Guard loads an entity and checks it belongs to the calling user. A missing
// row is ErrNotFound, someone else's row is ErrForbidden. Authentication has
// already happened by the time anything here runs.
type Guard struct {
	Store store.Store
}

func (g Guard) Job(ctx context.Context, userID, jobID int64) (domain.Job, error) {
	job, err := g.Store.Jobs().GetJob(ctx, jobID)
	if err != nil {
		return domain.Job{}, mapStoreErr(err)
	}
	if err := g.owns(ctx, userID, job.UserID, "job", jobID); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

// Employee has no owner of its own, ownership goes through its job.
func (g Guard) Employee(ctx context.Context, userID, employeeID int64) (domain.Employee, domain.Job, error) {
	emp, err := g.Store.Employees().GetEmployee(ctx, employeeID)
	if err != nil {
		return domain.Employee{}, domain.Job{}, mapStoreErr(err)
	}

	job, err := g.Store.Jobs().GetJob(ctx, emp.JobID)
	if err != nil {
		return domain.Employee{}, domain.Job{}, mapStoreErr(err)
	}
	if err := g.owns(ctx, userID, job.UserID, "employee", employeeID); err != nil {
		return domain.Employee{}, domain.Job{}, err
	}
	return emp, job, nil
}

func (g Guard) Mutual(ctx context.Context, userID, mutualID int64) (domain.Mutual, error) {
	m, err := g.Store.Mutuals().GetMutual(ctx, mutualID)
	if err != nil {
		return domain.Mutual{}, mapStoreErr(err)
	}
	if err := g.owns(ctx, userID, m.UserID, "mutual", mutualID); err != nil {
		return domain.Mutual{}, err
	}
	return m, nil
}

func (g Guard) Message(ctx context.Context, userID, messageID int64) (domain.Message, error) {
	m, err := g.Store.Messages().GetMessage(ctx, messageID)
	if err != nil {
		return domain.Message{}, mapStoreErr(err)
	}
	if err := g.owns(ctx, userID, m.UserID, "message", messageID); err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

func (g Guard) owns(ctx context.Context, userID, ownerID int64, kind string, id int64) error {
	if userID == ownerID {
		return nil
	}
	slogx.FromContext(ctx).Warn("ownership check failed",
		slog.String("kind", kind),
		slog.Int64("id", id),
		slog.Int64("owner_id", ownerID),
	)
	return ErrForbidden
}

// referenced is for ids taken from a request body: a missing row gets the
// same ErrForbidden as someone else's row.
func referenced(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrForbidden
	}
	return err
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrConflict
	}
	return err
}
