package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/talentlink/marketplace/internal/lifecycle"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrJobNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "job")
}

func NewErrApplicationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "application")
}

func NewErrInquiryNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "course inquiry")
}

func NewErrTrainingCenterNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "training center")
}

func NewErrNotificationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "notification")
}

// ErrTransitionRejected carries the validator's verdict so handlers can
// distinguish an illegal edge from a terminal-state violation.
type ErrTransitionRejected struct {
	error
	Reason lifecycle.Reason
}

func NewErrTransitionRejected(kind lifecycle.Kind, current, requested string, reason lifecycle.Reason) *ErrTransitionRejected {
	return &ErrTransitionRejected{
		error:  fmt.Errorf("%s transition %s -> %s rejected: %s", kind, current, requested, reason),
		Reason: reason,
	}
}

type ErrUnauthenticated struct {
	error
}

func NewErrUnauthenticated() *ErrUnauthenticated {
	return &ErrUnauthenticated{fmt.Errorf("authentication required")}
}

type ErrForbidden struct {
	error
}

func NewErrForbidden(message string) *ErrForbidden {
	return &ErrForbidden{fmt.Errorf("forbidden: %s", message)}
}

func NewErrNotOwner(resourceType string, id uuid.UUID) *ErrForbidden {
	return NewErrForbidden(fmt.Sprintf("%s %s is owned by another actor", resourceType, id))
}

type ErrDuplicateApplication struct {
	error
}

func NewErrDuplicateApplication(jobID, jobSeekerID uuid.UUID) *ErrDuplicateApplication {
	return &ErrDuplicateApplication{fmt.Errorf("job seeker %s already applied to job %s", jobSeekerID, jobID)}
}
