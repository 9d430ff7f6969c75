package model

import (
	"time"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

type TrainingCenterProfile struct {
	ID         uuid.UUID `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	IsVerified bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewTrainingCenterProfileFromId(id uuid.UUID) *TrainingCenterProfile {
	return &TrainingCenterProfile{ID: id}
}

func (t TrainingCenterProfile) ToApiResource() api.TrainingCenterProfile {
	return api.TrainingCenterProfile{
		Id:         t.ID,
		Name:       t.Name,
		IsVerified: t.IsVerified,
		UpdatedAt:  t.UpdatedAt,
	}
}
