package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/store/model"
	"gorm.io/gorm"
)

type Bookmark interface {
	// Toggle flips membership and returns the resulting state: true when
	// the bookmark now exists.
	Toggle(ctx context.Context, jobSeekerID uuid.UUID, itemType api.ItemType, itemID uuid.UUID) (bool, error)
	ListIds(ctx context.Context, jobSeekerID uuid.UUID, itemType api.ItemType) ([]uuid.UUID, error)
}

type BookmarkStore struct {
	db *gorm.DB
}

// Make sure we conform to Bookmark interface
var _ Bookmark = (*BookmarkStore)(nil)

func NewBookmarkStore(db *gorm.DB) Bookmark {
	return &BookmarkStore{db: db}
}

func (s *BookmarkStore) Toggle(ctx context.Context, jobSeekerID uuid.UUID, itemType api.ItemType, itemID uuid.UUID) (bool, error) {
	var isBookmarked bool

	err := s.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		bookmark := model.Bookmark{
			JobSeekerID: jobSeekerID,
			ItemType:    string(itemType),
			ItemID:      itemID,
		}

		var existing model.Bookmark
		result := tx.Where(&bookmark).First(&existing)
		switch {
		case result.Error == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("removing bookmark: %w", err)
			}
			isBookmarked = false
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			if err := tx.Create(&bookmark).Error; err != nil {
				return fmt.Errorf("creating bookmark: %w", err)
			}
			isBookmarked = true
		default:
			return fmt.Errorf("querying bookmark: %w", result.Error)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return isBookmarked, nil
}

func (s *BookmarkStore) ListIds(ctx context.Context, jobSeekerID uuid.UUID, itemType api.ItemType) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := s.getDB(ctx).Model(&model.Bookmark{}).
		Where("job_seeker_id = ? AND item_type = ?", jobSeekerID, string(itemType)).
		Order("created_at").
		Pluck("item_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("listing bookmark ids: %w", result.Error)
	}
	return ids, nil
}

func (s *BookmarkStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db
}
