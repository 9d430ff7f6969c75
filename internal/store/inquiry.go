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

type CourseInquiry interface {
	Create(ctx context.Context, inquiry model.CourseInquiry) (*api.CourseInquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*api.CourseInquiry, error)
	ListByTrainingCenter(ctx context.Context, trainingCenterID uuid.UUID) ([]api.CourseInquiry, error)
	Update(ctx context.Context, id uuid.UUID, status *api.InquiryStatus, notes *string) (*api.CourseInquiry, error)
	OrphanByCourse(ctx context.Context, courseID uuid.UUID) error
}

type CourseInquiryStore struct {
	db *gorm.DB
}

// Make sure we conform to CourseInquiry interface
var _ CourseInquiry = (*CourseInquiryStore)(nil)

func NewCourseInquiryStore(db *gorm.DB) CourseInquiry {
	return &CourseInquiryStore{db: db}
}

func (s *CourseInquiryStore) Create(ctx context.Context, inquiry model.CourseInquiry) (*api.CourseInquiry, error) {
	result := s.getDB(ctx).Create(&inquiry)
	if result.Error != nil {
		return nil, fmt.Errorf("creating course inquiry: %w", result.Error)
	}
	createdResource := inquiry.ToApiResource()
	return &createdResource, nil
}

func (s *CourseInquiryStore) Get(ctx context.Context, id uuid.UUID) (*api.CourseInquiry, error) {
	inquiry := model.NewCourseInquiryFromId(id)
	result := s.getDB(ctx).First(&inquiry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("querying course inquiry: %w", result.Error)
	}
	apiInquiry := inquiry.ToApiResource()
	return &apiInquiry, nil
}

func (s *CourseInquiryStore) ListByTrainingCenter(ctx context.Context, trainingCenterID uuid.UUID) ([]api.CourseInquiry, error) {
	var inquiries []model.CourseInquiry
	result := s.getDB(ctx).Where("training_center_id = ?", trainingCenterID).Order("created_at DESC").Find(&inquiries)
	if result.Error != nil {
		return nil, fmt.Errorf("listing course inquiries: %w", result.Error)
	}

	apiInquiries := make([]api.CourseInquiry, 0, len(inquiries))
	for _, i := range inquiries {
		apiInquiries = append(apiInquiries, i.ToApiResource())
	}
	return apiInquiries, nil
}

// Update writes status and/or notes. Notes are mutable independently of
// the status field.
func (s *CourseInquiryStore) Update(ctx context.Context, id uuid.UUID, status *api.InquiryStatus, notes *string) (*api.CourseInquiry, error) {
	inquiry := model.NewCourseInquiryFromId(id)
	selectFields := []string{}
	if status != nil {
		inquiry.Status = string(*status)
		selectFields = append(selectFields, "status")
	}
	if notes != nil {
		inquiry.Notes = *notes
		selectFields = append(selectFields, "notes")
	}
	if len(selectFields) == 0 {
		return s.Get(ctx, id)
	}

	result := s.getDB(ctx).Model(inquiry).Clauses(clause.Returning{}).Select(selectFields).Updates(&inquiry)
	if result.Error != nil {
		return nil, fmt.Errorf("updating course inquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	apiInquiry := inquiry.ToApiResource()
	return &apiInquiry, nil
}

// OrphanByCourse clears the course reference on all inquiries pointing at
// a deleted course. The inquiries themselves stay valid forever.
func (s *CourseInquiryStore) OrphanByCourse(ctx context.Context, courseID uuid.UUID) error {
	result := s.getDB(ctx).Model(&model.CourseInquiry{}).Where("course_id = ?", courseID).Update("course_id", nil)
	if result.Error != nil {
		return fmt.Errorf("orphaning course inquiries: %w", result.Error)
	}
	return nil
}

func (s *CourseInquiryStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
