package service

import (
	"context"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/pkg/metrics"
)

// ToggleBookmark flips membership for the caller's (itemType, itemID)
// pair. The returned IsBookmarked is the authoritative state after the
// flip.
func (h *ServiceHandler) ToggleBookmark(ctx context.Context, request api.BookmarkToggleRequest) (*api.BookmarkToggleResponse, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != api.RoleJobSeeker {
		return nil, NewErrForbidden("only job seekers may bookmark items")
	}

	isBookmarked, err := h.store.Bookmark().Toggle(ctx, user.ID, request.ItemType, request.ItemId)
	if err != nil {
		metrics.IncreaseBookmarkTogglesTotalMetric("error")
		return nil, err
	}

	if isBookmarked {
		metrics.IncreaseBookmarkTogglesTotalMetric("added")
	} else {
		metrics.IncreaseBookmarkTogglesTotalMetric("removed")
	}

	return &api.BookmarkToggleResponse{IsBookmarked: isBookmarked}, nil
}

func (h *ServiceHandler) ListBookmarkIds(ctx context.Context, itemType api.ItemType) (*api.BookmarkIdList, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != api.RoleJobSeeker {
		return nil, NewErrForbidden("only job seekers have bookmarks")
	}

	ids, err := h.store.Bookmark().ListIds(ctx, user.ID, itemType)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &api.BookmarkIdList{Ids: ids}, nil
}
