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

type Application interface {
	Create(ctx context.Context, application model.Application) (*api.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*api.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]api.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status api.ApplicationStatus) (*api.Application, error)
}

type ApplicationStore struct {
	db *gorm.DB
}

// Make sure we conform to Application interface
var _ Application = (*ApplicationStore)(nil)

func NewApplicationStore(db *gorm.DB) Application {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) Create(ctx context.Context, application model.Application) (*api.Application, error) {
	result := s.getDB(ctx).Create(&application)
	if result.Error != nil {
		// one application per (job, job seeker) pair
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("creating application: %w", result.Error)
	}
	createdResource := application.ToApiResource()
	return &createdResource, nil
}

func (s *ApplicationStore) Get(ctx context.Context, id uuid.UUID) (*api.Application, error) {
	application := model.NewApplicationFromId(id)
	result := s.getDB(ctx).First(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("querying application: %w", result.Error)
	}
	apiApplication := application.ToApiResource()
	return &apiApplication, nil
}

func (s *ApplicationStore) ListByJob(ctx context.Context, jobID uuid.UUID) ([]api.Application, error) {
	var applications []model.Application
	result := s.getDB(ctx).Where("job_id = ?", jobID).Order("created_at").Find(&applications)
	if result.Error != nil {
		return nil, fmt.Errorf("listing applications: %w", result.Error)
	}

	apiApplications := make([]api.Application, 0, len(applications))
	for _, a := range applications {
		apiApplications = append(apiApplications, a.ToApiResource())
	}
	return apiApplications, nil
}

func (s *ApplicationStore) UpdateStatus(ctx context.Context, id uuid.UUID, status api.ApplicationStatus) (*api.Application, error) {
	application := model.NewApplicationFromId(id)
	result := s.getDB(ctx).Model(application).Clauses(clause.Returning{}).Update("status", string(status))
	if result.Error != nil {
		return nil, fmt.Errorf("updating application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	apiApplication := application.ToApiResource()
	return &apiApplication, nil
}

func (s *ApplicationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
