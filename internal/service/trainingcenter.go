package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/pkg/metrics"
)

func (h *ServiceHandler) GetTrainingCenter(ctx context.Context, id uuid.UUID) (*api.TrainingCenterProfile, error) {
	profile, err := h.store.TrainingCenter().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrTrainingCenterNotFound(id)
		}
		return nil, err
	}
	return profile, nil
}

// SetVerification flips the admin-only verification flag. Re-sending the
// current value is already satisfied and performs no write.
func (h *ServiceHandler) SetVerification(ctx context.Context, id uuid.UUID, update api.VerificationUpdate) (*api.TrainingCenterProfile, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := h.GetTrainingCenter(ctx, id)
	if err != nil {
		return nil, err
	}

	decision := lifecycle.Validate(lifecycle.KindVerification, verificationStatus(profile.IsVerified), verificationStatus(update.IsVerified), user.Role)
	if !decision.Allowed {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindVerification), "rejected")
		return nil, NewErrTransitionRejected(lifecycle.KindVerification, verificationStatus(profile.IsVerified), verificationStatus(update.IsVerified), decision.Reason)
	}
	if decision.Noop {
		metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindVerification), "noop")
		return profile, nil
	}

	updated, err := h.store.TrainingCenter().SetVerified(ctx, id, update.IsVerified)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrTrainingCenterNotFound(id)
		}
		return nil, err
	}

	metrics.IncreaseTransitionsTotalMetric(string(lifecycle.KindVerification), "applied")
	return updated, nil
}

func verificationStatus(isVerified bool) string {
	if isVerified {
		return lifecycle.VerificationVerified
	}
	return lifecycle.VerificationUnverified
}
