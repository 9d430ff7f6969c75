package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/store"
)

const defaultNotificationPageSize = 50

// ListNotifications returns the caller's most recent notifications
// together with the unread count so a single call hydrates a panel.
func (h *ServiceHandler) ListNotifications(ctx context.Context, limit int) (*api.NotificationList, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}

	notifications, err := h.store.Notification().List(ctx, user.ID, limit)
	if err != nil {
		return nil, err
	}
	unread, err := h.store.Notification().UnreadCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []api.Notification{}
	}
	return &api.NotificationList{Data: notifications, UnreadCount: unread}, nil
}

func (h *ServiceHandler) GetUnreadCount(ctx context.Context) (*api.UnreadCount, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	count, err := h.store.Notification().UnreadCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &api.UnreadCount{Count: count}, nil
}

// MarkNotificationRead is idempotent: marking an already-read
// notification succeeds without changing anything.
func (h *ServiceHandler) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	user, err := requireUser(ctx)
	if err != nil {
		return err
	}

	if err := h.store.Notification().MarkRead(ctx, user.ID, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrNotificationNotFound(id)
		}
		return err
	}
	return nil
}

func (h *ServiceHandler) MarkAllNotificationsRead(ctx context.Context) error {
	user, err := requireUser(ctx)
	if err != nil {
		return err
	}
	return h.store.Notification().MarkAllRead(ctx, user.ID)
}

func (h *ServiceHandler) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	user, err := requireUser(ctx)
	if err != nil {
		return err
	}

	if err := h.store.Notification().Delete(ctx, user.ID, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrNotificationNotFound(id)
		}
		return err
	}
	return nil
}
