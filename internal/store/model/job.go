package model

import (
	"time"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

type Job struct {
	ID         uuid.UUID `gorm:"primaryKey"`
	EmployerID uuid.UUID `gorm:"index;not null"`
	Title      string    `gorm:"not null"`
	Status     string    `gorm:"not null"`
	// Derived counters. Maintained server-side, never written through the
	// status mutation path.
	ViewCount        int `gorm:"not null;default:0"`
	ApplicationCount int `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type JobList []Job

func NewJobFromId(id uuid.UUID) *Job {
	return &Job{ID: id}
}

func NewJobFromApiCreateResource(employerID uuid.UUID, create *api.JobCreate) *Job {
	status := create.Status
	if status == "" {
		status = api.JobStatusDraft
	}
	return &Job{
		ID:         uuid.New(),
		EmployerID: employerID,
		Title:      create.Title,
		Status:     string(status),
	}
}

func (j Job) ToApiResource() api.Job {
	return api.Job{
		Id:               j.ID,
		EmployerId:       j.EmployerID,
		Title:            j.Title,
		Status:           api.JobStatus(j.Status),
		ViewCount:        j.ViewCount,
		ApplicationCount: j.ApplicationCount,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func (jl JobList) ToApiResource() []api.Job {
	jobs := make([]api.Job, 0, len(jl))
	for _, j := range jl {
		jobs = append(jobs, j.ToApiResource())
	}
	return jobs
}
