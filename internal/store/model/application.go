package model

import (
	"time"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

// Application is created exactly once per (job, job seeker) pair; the
// composite unique index is what enforces it.
type Application struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	JobID       uuid.UUID `gorm:"uniqueIndex:applications_job_seeker;not null"`
	JobSeekerID uuid.UUID `gorm:"uniqueIndex:applications_job_seeker;not null"`
	Status      string    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewApplicationFromId(id uuid.UUID) *Application {
	return &Application{ID: id}
}

func NewApplication(jobID, jobSeekerID uuid.UUID) *Application {
	return &Application{
		ID:          uuid.New(),
		JobID:       jobID,
		JobSeekerID: jobSeekerID,
		Status:      string(api.ApplicationStatusPending),
	}
}

func (a Application) ToApiResource() api.Application {
	return api.Application{
		Id:          a.ID,
		JobId:       a.JobID,
		JobSeekerId: a.JobSeekerID,
		Status:      api.ApplicationStatus(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
