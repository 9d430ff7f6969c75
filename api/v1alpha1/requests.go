package v1alpha1

import "github.com/google/uuid"

type JobCreate struct {
	Title  string    `json:"title"`
	Status JobStatus `json:"status,omitempty"`
}

type JobStatusUpdate struct {
	Status JobStatus `json:"status"`
}

type ApplicationCreate struct {
	JobId uuid.UUID `json:"jobId"`
}

type ApplicationStatusUpdate struct {
	Status ApplicationStatus `json:"status"`
}

type InquiryCreate struct {
	TrainingCenterId uuid.UUID  `json:"trainingCenterId"`
	CourseId         *uuid.UUID `json:"courseId,omitempty"`
	ContactName      string     `json:"contactName,omitempty"`
	ContactEmail     string     `json:"contactEmail,omitempty"`
}

// InquiryUpdate carries a status change, a notes change, or both.
// Notes are mutable independently of status.
type InquiryUpdate struct {
	Status *InquiryStatus `json:"status,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
}

type VerificationUpdate struct {
	IsVerified bool `json:"isVerified"`
}

type BookmarkToggleRequest struct {
	ItemType ItemType  `json:"itemType"`
	ItemId   uuid.UUID `json:"itemId"`
}

type BookmarkToggleResponse struct {
	IsBookmarked bool `json:"isBookmarked"`
}

type BookmarkIdList struct {
	Ids []uuid.UUID `json:"ids"`
}

type NotificationList struct {
	Data        []Notification `json:"data"`
	UnreadCount int            `json:"unreadCount"`
}

type UnreadCount struct {
	Count int `json:"count"`
}

type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}
