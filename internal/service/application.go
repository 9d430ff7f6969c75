package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/internal/store/model"
	"github.com/talentlink/marketplace/pkg/metrics"
)

// CreateApplication creates the one allowed application per
// (job, job seeker) pair and bumps the job's derived counter in the same
// transaction.
func (h *ServiceHandler) CreateApplication(ctx context.Context, jobID uuid.UUID) (*api.Application, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != api.RoleJobSeeker {
		return nil, NewErrForbidden("only job seekers may apply")
	}

	if _, err := h.GetJob(ctx, jobID); err != nil {
		return nil, err
	}

	ctx, err = h.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}

	application, err := h.store.Application().Create(ctx, *model.NewApplication(jobID, user.ID))
	if err != nil {
		_, _ = store.Rollback(ctx)
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrDuplicateApplication(jobID, user.ID)
		}
		return nil, err
	}

	if err := h.store.Job().IncrementApplicationCount(ctx, jobID); err != nil {
		_, _ = store.Rollback(ctx)
		return nil, err
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	return application, nil
}

func (h *ServiceHandler) GetApplication(ctx context.Context, id uuid.UUID) (*api.Application, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	application, err := h.store.Application().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(id)
		}
		return nil, err
	}

	switch user.Role {
	case api.RoleAdmin:
		return application, nil
	case api.RoleJobSeeker:
		if application.JobSeekerId != user.ID {
			return nil, NewErrNotOwner("application", id)
		}
		return application, nil
	case api.RoleEmployer:
		job, err := h.GetJob(ctx, application.JobId)
		if err != nil {
			return nil, err
		}
		if job.EmployerId != user.ID {
			return nil, NewErrNotOwner("application", id)
		}
		return application, nil
	default:
		return nil, NewErrForbidden("role may not read applications")
	}
}

// UpdateApplicationStatus moves an application through the pipeline. Only
// the employer owning the referenced job, or an admin, may do so.
func (h *ServiceHandler) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, update api.ApplicationStatusUpdate) (*api.Application, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	application, err := h.store.Application().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(id)
		}
		return nil, err
	}

	if user.Role != api.RoleAdmin {
		job, err := h.GetJob(ctx, application.JobId)
		if err != nil {
			return nil, err
		}
		if job.EmployerId != user.ID {
			return nil, NewErrNotOwner("application", id)
		}
	}

	decision := lifecycle.Validate(lifecycle.KindApplication, string(application.Status), string(update.Status), user.Role)
	if !decision.Allowed {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindApplication), "rejected")
		return nil, NewErrTransitionRejected(lifecycle.KindApplication, string(application.Status), string(update.Status), decision.Reason)
	}
	if decision.Noop {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindApplication), "noop")
		return application, nil
	}

	updated, err := h.store.Application().UpdateStatus(ctx, id, update.Status)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrApplicationNotFound(id)
		}
		return nil, err
	}

	metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindApplication), "applied")
	return updated, nil
}
