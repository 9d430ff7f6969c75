package model

import (
	"time"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

// CourseInquiry keeps a nullable course reference: deleting a course (or
// its training center) orphans the inquiry instead of cascading into it.
type CourseInquiry struct {
	ID               uuid.UUID  `gorm:"primaryKey"`
	CourseID         *uuid.UUID `gorm:"index"`
	TrainingCenterID uuid.UUID  `gorm:"index;not null"`
	JobSeekerID      *uuid.UUID
	ContactName      string
	ContactEmail     string
	Status           string `gorm:"not null"`
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewCourseInquiryFromId(id uuid.UUID) *CourseInquiry {
	return &CourseInquiry{ID: id}
}

func NewCourseInquiryFromApiCreateResource(trainingCenterID uuid.UUID, jobSeekerID *uuid.UUID, create *api.InquiryCreate) *CourseInquiry {
	return &CourseInquiry{
		ID:               uuid.New(),
		CourseID:         create.CourseId,
		TrainingCenterID: trainingCenterID,
		JobSeekerID:      jobSeekerID,
		ContactName:      create.ContactName,
		ContactEmail:     create.ContactEmail,
		Status:           string(api.InquiryStatusPending),
	}
}

func (c CourseInquiry) ToApiResource() api.CourseInquiry {
	return api.CourseInquiry{
		Id:               c.ID,
		CourseId:         c.CourseID,
		TrainingCenterId: c.TrainingCenterID,
		JobSeekerId:      c.JobSeekerID,
		ContactName:      c.ContactName,
		ContactEmail:     c.ContactEmail,
		Status:           api.InquiryStatus(c.Status),
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
