package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/store/model"
	"gorm.io/gorm"
)

type Notification interface {
	Create(ctx context.Context, notification model.Notification) (*api.Notification, error)
	List(ctx context.Context, ownerID uuid.UUID, limit int) ([]api.Notification, error)
	UnreadCount(ctx context.Context, ownerID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, ownerID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, ownerID uuid.UUID) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type NotificationStore struct {
	db *gorm.DB
}

// Make sure we conform to Notification interface
var _ Notification = (*NotificationStore)(nil)

func NewNotificationStore(db *gorm.DB) Notification {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) Create(ctx context.Context, notification model.Notification) (*api.Notification, error) {
	if notification.ID == (uuid.UUID{}) {
		notification.ID = uuid.New()
	}
	result := s.getDB(ctx).Create(&notification)
	if result.Error != nil {
		return nil, fmt.Errorf("creating notification: %w", result.Error)
	}
	createdResource := notification.ToApiResource()
	return &createdResource, nil
}

func (s *NotificationStore) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]api.Notification, error) {
	var notifications model.NotificationList
	result := s.getDB(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Limit(limit).Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("listing notifications: %w", result.Error)
	}
	return notifications.ToApiResource(), nil
}

func (s *NotificationStore) UnreadCount(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int64
	result := s.getDB(ctx).Model(&model.Notification{}).
		Where("owner_id = ? AND is_read = ?", ownerID, false).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", result.Error)
	}
	return int(count), nil
}

func (s *NotificationStore) MarkRead(ctx context.Context, ownerID, id uuid.UUID) error {
	result := s.getDB(ctx).Model(&model.Notification{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("marking notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context, ownerID uuid.UUID) error {
	result := s.getDB(ctx).Model(&model.Notification{}).
		Where("owner_id = ? AND is_read = ?", ownerID, false).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("marking all notifications read: %w", result.Error)
	}
	return nil
}

func (s *NotificationStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := s.getDB(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Notification{})
	if result.Error != nil {
		return fmt.Errorf("deleting notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *NotificationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
