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

type Job interface {
	Create(ctx context.Context, job model.Job) (*api.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*api.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]api.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status api.JobStatus) (*api.Job, error)
	IncrementApplicationCount(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobStore struct {
	db *gorm.DB
}

// Make sure we conform to Job interface
var _ Job = (*JobStore)(nil)

func NewJobStore(db *gorm.DB) Job {
	return &JobStore{db: db}
}

func (s *JobStore) Create(ctx context.Context, job model.Job) (*api.Job, error) {
	result := s.getDB(ctx).Create(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("creating job: %w", result.Error)
	}
	createdResource := job.ToApiResource()
	return &createdResource, nil
}

func (s *JobStore) Get(ctx context.Context, id uuid.UUID) (*api.Job, error) {
	job := model.NewJobFromId(id)
	result := s.getDB(ctx).First(&job)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("querying job: %w", result.Error)
	}
	apiJob := job.ToApiResource()
	return &apiJob, nil
}

func (s *JobStore) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]api.Job, error) {
	var jobs model.JobList
	result := s.getDB(ctx).Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs)
	if result.Error != nil {
		return nil, fmt.Errorf("listing jobs: %w", result.Error)
	}
	return jobs.ToApiResource(), nil
}

func (s *JobStore) UpdateStatus(ctx context.Context, id uuid.UUID, status api.JobStatus) (*api.Job, error) {
	job := model.NewJobFromId(id)
	result := s.getDB(ctx).Model(job).Clauses(clause.Returning{}).Update("status", string(status))
	if result.Error != nil {
		return nil, fmt.Errorf("updating job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	apiJob := job.ToApiResource()
	return &apiJob, nil
}

func (s *JobStore) IncrementApplicationCount(ctx context.Context, id uuid.UUID) error {
	result := s.getDB(ctx).Model(&model.Job{}).Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("incrementing application count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *JobStore) Delete(ctx context.Context, id uuid.UUID) error {
	job := model.NewJobFromId(id)
	result := s.getDB(ctx).Delete(&job)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("deleting job: %w", result.Error)
	}
	return nil
}

func (s *JobStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
