package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/auth"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/internal/store/model"
	"github.com/talentlink/marketplace/pkg/metrics"
)

// CreateInquiry accepts inquiries from signed-in job seekers and from
// anonymous visitors alike; anonymous ones carry contact fields instead
// of an account reference.
func (h *ServiceHandler) CreateInquiry(ctx context.Context, inquiryCreate api.InquiryCreate) (*api.CourseInquiry, error) {
	var jobSeekerID *uuid.UUID
	if user, found := auth.UserFromContext(ctx); found && user.Role == api.RoleJobSeeker {
		id := user.ID
		jobSeekerID = &id
	} else if inquiryCreate.ContactName == "" || inquiryCreate.ContactEmail == "" {
		return nil, NewErrForbidden("anonymous inquiries require contact details")
	}

	inquiry, err := h.store.CourseInquiry().Create(ctx, *model.NewCourseInquiryFromApiCreateResource(inquiryCreate.TrainingCenterId, jobSeekerID, &inquiryCreate))
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (h *ServiceHandler) GetInquiry(ctx context.Context, id uuid.UUID) (*api.CourseInquiry, error) {
	inquiry, err := h.store.CourseInquiry().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInquiryNotFound(id)
		}
		return nil, err
	}
	return inquiry, nil
}

// UpdateInquiry handles status changes and notes edits, together or
// separately. Only the owning training center touches an inquiry. Notes
// are mutable independently of status, including on terminal inquiries.
func (h *ServiceHandler) UpdateInquiry(ctx context.Context, id uuid.UUID, update api.InquiryUpdate) (*api.CourseInquiry, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	inquiry, err := h.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role != api.RoleTrainingCenter || inquiry.TrainingCenterId != user.ID {
		return nil, NewErrNotOwner("course inquiry", id)
	}

	var status *api.InquiryStatus
	if update.Status != nil {
		decision := lifecycle.Validate(lifecycle.KindCourseInquiry, string(inquiry.Status), string(*update.Status), user.Role)
		if !decision.Allowed {
			metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindCourseInquiry), "rejected")
			return nil, NewErrTransitionRejected(lifecycle.KindCourseInquiry, string(inquiry.Status), string(*update.Status), decision.Reason)
		}
		if !decision.Noop {
			status = update.Status
		}
	}

	if status == nil && update.Notes == nil {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindCourseInquiry), "noop")
		return inquiry, nil
	}

	updated, err := h.store.CourseInquiry().Update(ctx, id, status, update.Notes)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrInquiryNotFound(id)
		}
		return nil, err
	}

	if status != nil {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindCourseInquiry), "applied")
	}
	return updated, nil
}
