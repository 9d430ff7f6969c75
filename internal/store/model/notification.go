package model

import (
	"time"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

type Notification struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	OwnerID   uuid.UUID `gorm:"index;not null"`
	Kind      string    `gorm:"not null"`
	Title     string    `gorm:"not null"`
	Message   string
	IsRead    bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}

type NotificationList []Notification

func (n Notification) ToApiResource() api.Notification {
	return api.Notification{
		Id:        n.ID,
		OwnerId:   n.OwnerID,
		Kind:      n.Kind,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (nl NotificationList) ToApiResource() []api.Notification {
	notifications := make([]api.Notification, 0, len(nl))
	for _, n := range nl {
		notifications = append(notifications, n.ToApiResource())
	}
	return notifications
}
