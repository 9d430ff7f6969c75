package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainingCenter interface {
	Create(ctx context.Context, profile model.TrainingCenterProfile) (*api.TrainingCenterProfile, error)
	Get(ctx context.Context, id uuid.UUID) (*api.TrainingCenterProfile, error)
	SetVerified(ctx context.Context, id uuid.UUID, isVerified bool) (*api.TrainingCenterProfile, error)
}

type TrainingCenterStore struct {
	db *gorm.DB
}

// Make sure we conform to TrainingCenter interface
var _ TrainingCenter = (*TrainingCenterStore)(nil)

func NewTrainingCenterStore(db *gorm.DB) TrainingCenter {
	return &TrainingCenterStore{db: db}
}

func (s *TrainingCenterStore) Create(ctx context.Context, profile model.TrainingCenterProfile) (*api.TrainingCenterProfile, error) {
	result := s.getDB(ctx).Create(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("creating training center profile: %w", result.Error)
	}
	createdResource := profile.ToApiResource()
	return &createdResource, nil
}

func (s *TrainingCenterStore) Get(ctx context.Context, id uuid.UUID) (*api.TrainingCenterProfile, error) {
	profile := model.NewTrainingCenterProfileFromId(id)
	result := s.getDB(ctx).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("querying training center profile: %w", result.Error)
	}
	apiProfile := profile.ToApiResource()
	return &apiProfile, nil
}

// SetVerified writes the target value regardless of the current one, so
// repeating the same toggle is safe.
func (s *TrainingCenterStore) SetVerified(ctx context.Context, id uuid.UUID, isVerified bool) (*api.TrainingCenterProfile, error) {
	profile := model.NewTrainingCenterProfileFromId(id)
	result := s.getDB(ctx).Model(profile).Clauses(clause.Returning{}).Update("is_verified", isVerified)
	if result.Error != nil {
		return nil, fmt.Errorf("updating training center verification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	apiProfile := profile.ToApiResource()
	return &apiProfile, nil
}

func (s *TrainingCenterStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
