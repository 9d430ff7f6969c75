package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/client"
	"github.com/talentlink/marketplace/internal/guard"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/pkg/metrics"
)

// Session drives status mutations for one signed-in user. Every
// transition is validated locally first, serialized per record, and the
// cache is only updated from the server's confirmed response.
type Session struct {
	identity client.Identity
	gateway  Gateway
	guard    *guard.Guard
	store    *EntityStore
	log      *zap.SugaredLogger
}

func New(identity client.Identity, gateway Gateway) *Session {
	return &Session{
		identity: identity,
		gateway:  gateway,
		guard:    guard.New(),
		store:    NewEntityStore(),
		log:      zap.S().Named("session"),
	}
}

// Store exposes the confirmed-entity cache, mainly for views.
func (s *Session) Store() *EntityStore {
	return s.store
}

func (s *Session) LoadJob(ctx context.Context, id uuid.UUID) (*api.Job, error) {
	job, err := s.gateway.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.PutJob(*job)
	return job, nil
}

// TransitionJob requests a job status change. Illegal intents fail
// before any network call; a concurrent mutation on the same job yields
// guard.ErrBusy and nothing is sent.
func (s *Session) TransitionJob(ctx context.Context, id uuid.UUID, requested api.JobStatus) (*api.Job, error) {
	job, ok := s.store.Job(id)
	if !ok {
		loaded, err := s.LoadJob(ctx, id)
		if err != nil {
			return nil, err
		}
		job = *loaded
	}

	decision := lifecycle.Validate(lifecycle.KindJob, string(job.Status), string(requested), s.identity.Role)
	if !decision.Allowed {
		return nil, &TransitionError{
			Kind:      lifecycle.KindJob,
			Current:   string(job.Status),
			Requested: string(requested),
			Reason:    decision.Reason,
		}
	}
	if decision.Noop {
		return &job, nil
	}

	token, err := s.guard.Acquire(guard.Key{Kind: lifecycle.KindJob, ID: id})
	if err != nil {
		metrics.IncreaseGuardBusyTotalMetric(string(lifecycle.KindJob))
		return nil, err
	}
	defer s.guard.Release(token)

	updated, err := s.gateway.UpdateJobStatus(ctx, id, api.JobStatusUpdate{Status: requested})
	if err != nil {
		s.log.Warnw("job transition refused by server", "job", id, "requested", requested, "error", err)
		return nil, err
	}

	s.store.PutJob(*updated)
	return updated, nil
}

func (s *Session) LoadApplication(ctx context.Context, id uuid.UUID) (*api.Application, error) {
	application, err := s.gateway.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.PutApplication(*application)
	return application, nil
}

func (s *Session) TransitionApplication(ctx context.Context, id uuid.UUID, requested api.ApplicationStatus) (*api.Application, error) {
	application, ok := s.store.Application(id)
	if !ok {
		loaded, err := s.LoadApplication(ctx, id)
		if err != nil {
			return nil, err
		}
		application = *loaded
	}

	decision := lifecycle.Validate(lifecycle.KindApplication, string(application.Status), string(requested), s.identity.Role)
	if !decision.Allowed {
		return nil, &TransitionError{
			Kind:      lifecycle.KindApplication,
			Current:   string(application.Status),
			Requested: string(requested),
			Reason:    decision.Reason,
		}
	}
	if decision.Noop {
		return &application, nil
	}

	token, err := s.guard.Acquire(guard.Key{Kind: lifecycle.KindApplication, ID: id})
	if err != nil {
		metrics.IncreaseGuardBusyTotalMetric(string(lifecycle.KindApplication))
		return nil, err
	}
	defer s.guard.Release(token)

	updated, err := s.gateway.UpdateApplicationStatus(ctx, id, api.ApplicationStatusUpdate{Status: requested})
	if err != nil {
		s.log.Warnw("application transition refused by server", "application", id, "requested", requested, "error", err)
		return nil, err
	}

	s.store.PutApplication(*updated)
	return updated, nil
}

func (s *Session) LoadInquiry(ctx context.Context, id uuid.UUID) (*api.CourseInquiry, error) {
	inquiry, err := s.gateway.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.PutInquiry(*inquiry)
	return inquiry, nil
}

// UpdateInquiry sends a status change, a notes change, or both. A pure
// notes edit skips transition validation; it is legal on terminal
// inquiries too.
func (s *Session) UpdateInquiry(ctx context.Context, id uuid.UUID, update api.InquiryUpdate) (*api.CourseInquiry, error) {
	inquiry, ok := s.store.Inquiry(id)
	if !ok {
		loaded, err := s.LoadInquiry(ctx, id)
		if err != nil {
			return nil, err
		}
		inquiry = *loaded
	}

	if update.Status != nil {
		decision := lifecycle.Validate(lifecycle.KindCourseInquiry, string(inquiry.Status), string(*update.Status), s.identity.Role)
		if !decision.Allowed {
			return nil, &TransitionError{
				Kind:      lifecycle.KindCourseInquiry,
				Current:   string(inquiry.Status),
				Requested: string(*update.Status),
				Reason:    decision.Reason,
			}
		}
		if decision.Noop {
			update.Status = nil
		}
	}

	if update.Status == nil && update.Notes == nil {
		return &inquiry, nil
	}

	token, err := s.guard.Acquire(guard.Key{Kind: lifecycle.KindCourseInquiry, ID: id})
	if err != nil {
		metrics.IncreaseGuardBusyTotalMetric(string(lifecycle.KindCourseInquiry))
		return nil, err
	}
	defer s.guard.Release(token)

	updated, err := s.gateway.UpdateInquiry(ctx, id, update)
	if err != nil {
		s.log.Warnw("inquiry update refused by server", "inquiry", id, "error", err)
		return nil, err
	}

	s.store.PutInquiry(*updated)
	return updated, nil
}

func (s *Session) LoadTrainingCenter(ctx context.Context, id uuid.UUID) (*api.TrainingCenterProfile, error) {
	profile, err := s.gateway.GetTrainingCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.PutTrainingCenter(*profile)
	return profile, nil
}

// SetVerification toggles the admin verification flag through the same
// validate-guard-confirm path as the other transitions.
func (s *Session) SetVerification(ctx context.Context, id uuid.UUID, verified bool) (*api.TrainingCenterProfile, error) {
	profile, ok := s.store.TrainingCenter(id)
	if !ok {
		loaded, err := s.LoadTrainingCenter(ctx, id)
		if err != nil {
			return nil, err
		}
		profile = *loaded
	}

	decision := lifecycle.Validate(lifecycle.KindVerification, verificationStatus(profile.IsVerified), verificationStatus(verified), s.identity.Role)
	if !decision.Allowed {
		return nil, &TransitionError{
			Kind:      lifecycle.KindVerification,
			Current:   verificationStatus(profile.IsVerified),
			Requested: verificationStatus(verified),
			Reason:    decision.Reason,
		}
	}
	if decision.Noop {
		return &profile, nil
	}

	token, err := s.guard.Acquire(guard.Key{Kind: lifecycle.KindVerification, ID: id})
	if err != nil {
		metrics.IncreaseGuardBusyTotalMetric(string(lifecycle.KindVerification))
		return nil, err
	}
	defer s.guard.Release(token)

	updated, err := s.gateway.SetVerification(ctx, id, api.VerificationUpdate{IsVerified: verified})
	if err != nil {
		s.log.Warnw("verification change refused by server", "trainingCenter", id, "error", err)
		return nil, err
	}

	s.store.PutTrainingCenter(*updated)
	return updated, nil
}

func verificationStatus(isVerified bool) string {
	if isVerified {
		return lifecycle.VerificationVerified
	}
	return lifecycle.VerificationUnverified
}
