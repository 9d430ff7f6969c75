// Package session is the client-side consistency layer. It validates
// transition intents locally before any network call, serializes
// mutations per record, and caches only server-confirmed values.
package session

import (
	"context"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

// Gateway is the client interface to the marketplace API server. Every
// mutation returns the confirmed resource; the session layer never
// writes anything the server has not echoed back.
//
//go:generate moq -fmt=goimports -out zz_generated_gateway.go . Gateway
type Gateway interface {
	GetJob(ctx context.Context, id uuid.UUID) (*api.Job, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, update api.JobStatusUpdate) (*api.Job, error)

	GetApplication(ctx context.Context, id uuid.UUID) (*api.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, update api.ApplicationStatusUpdate) (*api.Application, error)

	GetInquiry(ctx context.Context, id uuid.UUID) (*api.CourseInquiry, error)
	UpdateInquiry(ctx context.Context, id uuid.UUID, update api.InquiryUpdate) (*api.CourseInquiry, error)

	GetTrainingCenter(ctx context.Context, id uuid.UUID) (*api.TrainingCenterProfile, error)
	SetVerification(ctx context.Context, id uuid.UUID, update api.VerificationUpdate) (*api.TrainingCenterProfile, error)

	ToggleBookmark(ctx context.Context, request api.BookmarkToggleRequest) (*api.BookmarkToggleResponse, error)
	ListBookmarkIds(ctx context.Context, itemType api.ItemType) (*api.BookmarkIdList, error)

	ListNotifications(ctx context.Context, limit int) (*api.NotificationList, error)
	GetUnreadCount(ctx context.Context) (*api.UnreadCount, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
