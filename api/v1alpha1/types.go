package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authenticated user category gating which transitions
// are permitted.
type Role string

const (
	RoleJobSeeker      Role = "jobseeker"
	RoleEmployer       Role = "employer"
	RoleTrainingCenter Role = "training_center"
	RoleAdmin          Role = "admin"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"
)

type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusEnrolled  InquiryStatus = "enrolled"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// ItemType identifies what a bookmark points at.
type ItemType string

const (
	ItemTypeJob    ItemType = "job"
	ItemTypeCourse ItemType = "course"
)

type Job struct {
	Id         uuid.UUID `json:"id"`
	EmployerId uuid.UUID `json:"employerId"`
	Title      string    `json:"title"`
	Status     JobStatus `json:"status"`
	// ViewCount and ApplicationCount are derived server-side and are
	// never written by clients.
	ViewCount        int       `json:"viewCount"`
	ApplicationCount int       `json:"applicationCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Application struct {
	Id          uuid.UUID         `json:"id"`
	JobId       uuid.UUID         `json:"jobId"`
	JobSeekerId uuid.UUID         `json:"jobSeekerId"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CourseInquiry references a course that may no longer exist. An inquiry
// whose course was deleted stays valid forever with CourseId == nil.
type CourseInquiry struct {
	Id               uuid.UUID     `json:"id"`
	CourseId         *uuid.UUID    `json:"courseId,omitempty"`
	TrainingCenterId uuid.UUID     `json:"trainingCenterId"`
	JobSeekerId      *uuid.UUID    `json:"jobSeekerId,omitempty"`
	ContactName      string        `json:"contactName,omitempty"`
	ContactEmail     string        `json:"contactEmail,omitempty"`
	Status           InquiryStatus `json:"status"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type TrainingCenterProfile struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"isVerified"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Notification struct {
	Id        uuid.UUID `json:"id"`
	OwnerId   uuid.UUID `json:"ownerId"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type JobList []Job
type NotificationSlice []Notification
