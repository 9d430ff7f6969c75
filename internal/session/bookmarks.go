package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/client"
	"github.com/talentlink/marketplace/internal/guard"
	"github.com/talentlink/marketplace/pkg/metrics"
)

type bookmarkKey struct {
	itemType api.ItemType
	itemID   uuid.UUID
}

// BookmarkSync mirrors the caller's bookmark membership. Membership
// only changes on a server-confirmed toggle; each view pulls the set it
// needs, no cross-view propagation happens on this side.
type BookmarkSync struct {
	role    api.Role
	gateway Gateway
	log     *zap.SugaredLogger

	mu       sync.Mutex
	items    map[bookmarkKey]struct{}
	inFlight map[bookmarkKey]struct{}
}

func NewBookmarkSync(identity client.Identity, gateway Gateway) *BookmarkSync {
	return &BookmarkSync{
		role:     identity.Role,
		gateway:  gateway,
		log:      zap.S().Named("bookmarks"),
		items:    make(map[bookmarkKey]struct{}),
		inFlight: make(map[bookmarkKey]struct{}),
	}
}

// Initialize fetches the bookmark ids for one view. Failure is not
// fatal: the view renders with an empty set and individual toggles
// still work.
func (b *BookmarkSync) Initialize(ctx context.Context, itemType api.ItemType) {
	if b.role != api.RoleJobSeeker {
		return
	}

	list, err := b.gateway.ListBookmarkIds(ctx, itemType)
	if err != nil {
		b.log.Warnw("bookmark fetch failed, rendering unbookmarked", "itemType", itemType, "error", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.items {
		if key.itemType == itemType {
			delete(b.items, key)
		}
	}
	for _, id := range list.Ids {
		b.items[bookmarkKey{itemType: itemType, itemID: id}] = struct{}{}
	}
}

// Toggle flips one bookmark. The local set only moves to whatever state
// the server confirms; on failure it stays where it was. Non-seekers
// get a silent no-op. A second toggle while one is in flight on the
// same item returns guard.ErrBusy.
func (b *BookmarkSync) Toggle(ctx context.Context, itemType api.ItemType, itemID uuid.UUID) (bool, error) {
	if b.role != api.RoleJobSeeker {
		return false, nil
	}

	key := bookmarkKey{itemType: itemType, itemID: itemID}

	b.mu.Lock()
	if _, busy := b.inFlight[key]; busy {
		b.mu.Unlock()
		metrics.IncreaseGuardBusyTotalMetric("bookmark")
		return b.contains(key), guard.ErrBusy
	}
	b.inFlight[key] = struct{}{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.inFlight, key)
		b.mu.Unlock()
	}()

	response, err := b.gateway.ToggleBookmark(ctx, api.BookmarkToggleRequest{ItemType: itemType, ItemId: itemID})
	if err != nil {
		b.log.Warnw("bookmark toggle failed, state unchanged", "itemType", itemType, "item", itemID, "error", err)
		return b.contains(key), err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if response.IsBookmarked {
		b.items[key] = struct{}{}
	} else {
		delete(b.items, key)
	}
	return response.IsBookmarked, nil
}

// Contains reports confirmed membership.
func (b *BookmarkSync) Contains(itemType api.ItemType, itemID uuid.UUID) bool {
	return b.contains(bookmarkKey{itemType: itemType, itemID: itemID})
}

// Ids returns the confirmed ids for one view.
func (b *BookmarkSync) Ids(itemType api.ItemType) []uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]uuid.UUID, 0)
	for key := range b.items {
		if key.itemType == itemType {
			ids = append(ids, key.itemID)
		}
	}
	return ids
}

func (b *BookmarkSync) contains(key bookmarkKey) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.items[key]
	return ok
}
