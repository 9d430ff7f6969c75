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

func (h *ServiceHandler) CreateJob(ctx context.Context, jobCreate api.JobCreate) (*api.Job, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != api.RoleEmployer && user.Role != api.RoleAdmin {
		return nil, NewErrForbidden("only employers may post jobs")
	}

	// jobs start in draft or go live immediately, nothing else
	if jobCreate.Status != "" && jobCreate.Status != api.JobStatusDraft && jobCreate.Status != api.JobStatusActive {
		return nil, NewErrTransitionRejected(lifecycle.KindJob, "", string(jobCreate.Status), lifecycle.ReasonNoSuchEdge)
	}

	job, err := h.store.Job().Create(ctx, *model.NewJobFromApiCreateResource(user.ID, &jobCreate))
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (h *ServiceHandler) GetJob(ctx context.Context, id uuid.UUID) (*api.Job, error) {
	job, err := h.store.Job().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

// UpdateJobStatus applies a status transition and returns the confirmed
// job. Requesting the current status is already satisfied and performs no
// write.
func (h *ServiceHandler) UpdateJobStatus(ctx context.Context, id uuid.UUID, update api.JobStatusUpdate) (*api.Job, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	job, err := h.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role != api.RoleAdmin && job.EmployerId != user.ID {
		return nil, NewErrNotOwner("job", id)
	}

	decision := lifecycle.Validate(lifecycle.KindJob, string(job.Status), string(update.Status), user.Role)
	if !decision.Allowed {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindJob), "rejected")
		return nil, NewErrTransitionRejected(lifecycle.KindJob, string(job.Status), string(update.Status), decision.Reason)
	}
	if decision.Noop {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindJob), "noop")
		return job, nil
	}

	updated, err := h.store.Job().UpdateStatus(ctx, id, update.Status)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}

	metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindJob), "applied")
	return updated, nil
}

// DeleteJob removes the posting entirely. Deleting is distinct from
// closing and is allowed from any status.
func (h *ServiceHandler) DeleteJob(ctx context.Context, id uuid.UUID) error {
	user, err := requireUser(ctx)
	if err != nil {
		return err
	}

	job, err := h.GetJob(ctx, id)
	if err != nil {
		return err
	}

	if user.Role != api.RoleAdmin && job.EmployerId != user.ID {
		return NewErrNotOwner("job", id)
	}

	return h.store.Job().Delete(ctx, id)
}
