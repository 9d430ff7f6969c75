package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	jitterbug "github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/pkg/metrics"
)

const (
	defaultPollInterval = 30 * time.Second
	pollJitterStdev     = 2 * time.Second
)

// NotificationEngine keeps the panel list and the unread badge coherent
// for one session. The list fills once up front; the badge refreshes on
// a jittered poll. A failed poll keeps the last known count and waits
// for the next tick.
type NotificationEngine struct {
	gateway      Gateway
	pollInterval time.Duration
	// decrementOnDelete controls whether deleting an unread notification
	// lowers the badge immediately or leaves it to the next poll.
	decrementOnDelete bool
	log               *zap.SugaredLogger

	mu            sync.Mutex
	notifications []api.Notification
	unread        int
}

type NotificationEngineOption func(*NotificationEngine)

func WithPollInterval(interval time.Duration) NotificationEngineOption {
	return func(e *NotificationEngine) {
		e.pollInterval = interval
	}
}

func WithDecrementUnreadOnDelete() NotificationEngineOption {
	return func(e *NotificationEngine) {
		e.decrementOnDelete = true
	}
}

func NewNotificationEngine(gateway Gateway, opts ...NotificationEngineOption) *NotificationEngine {
	e := &NotificationEngine{
		gateway:      gateway,
		pollInterval: defaultPollInterval,
		log:          zap.S().Named("notifications"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run fetches the initial list, then polls the unread count until the
// context is cancelled. It blocks; callers start it on its own
// goroutine.
func (e *NotificationEngine) Run(ctx context.Context) {
	if err := e.Refresh(ctx); err != nil {
		e.log.Warnw("initial notification fetch failed", "error", err)
	}

	ticker := jitterbug.New(e.pollInterval, &jitterbug.Norm{Stdev: pollJitterStdev})
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.pollUnreadCount(ctx)
		}
	}
}

// Refresh replaces the list and the unread count with a fresh server
// snapshot.
func (e *NotificationEngine) Refresh(ctx context.Context) error {
	list, err := e.gateway.ListNotifications(ctx, 0)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.notifications = list.Data
	e.unread = max(0, list.UnreadCount)
	return nil
}

func (e *NotificationEngine) pollUnreadCount(ctx context.Context) {
	count, err := e.gateway.GetUnreadCount(ctx)
	if err != nil {
		metrics.IncreaseNotificationPollsTotalMetric("error")
		e.log.Debugw("unread count poll failed, keeping last value", "error", err)
		return
	}
	metrics.IncreaseNotificationPollsTotalMetric("ok")

	e.mu.Lock()
	defer e.mu.Unlock()
	e.unread = max(0, count.Count)
}

// MarkAsRead marks one notification read. It only acts on a
// notification the session knows and still sees as unread; everything
// else is a no-op so the count cannot double-decrement.
func (e *NotificationEngine) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	if i := e.indexOf(id); i == -1 || e.notifications[i].IsRead {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	if err := e.gateway.MarkNotificationRead(ctx, id); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.indexOf(id); i != -1 && !e.notifications[i].IsRead {
		e.notifications[i].IsRead = true
		e.unread = max(0, e.unread-1)
	}
	return nil
}

// indexOf is called with the mutex held.
func (e *NotificationEngine) indexOf(id uuid.UUID) int {
	for i := range e.notifications {
		if e.notifications[i].Id == id {
			return i
		}
	}
	return -1
}

// MarkAllAsRead flips every notification in one call.
func (e *NotificationEngine) MarkAllAsRead(ctx context.Context) error {
	if err := e.gateway.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.notifications {
		e.notifications[i].IsRead = true
	}
	e.unread = 0
	return nil
}

// Delete removes one notification. The badge stays put for unread
// deletions unless the engine was built with decrement-on-delete; the
// next poll reconciles either way.
func (e *NotificationEngine) Delete(ctx context.Context, id uuid.UUID) error {
	if err := e.gateway.DeleteNotification(ctx, id); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.notifications {
		if e.notifications[i].Id != id {
			continue
		}
		wasUnread := !e.notifications[i].IsRead
		e.notifications = append(e.notifications[:i], e.notifications[i+1:]...)
		if wasUnread && e.decrementOnDelete {
			e.unread = max(0, e.unread-1)
		}
		break
	}
	return nil
}

// Unread returns the confirmed unread count. Never negative.
func (e *NotificationEngine) Unread() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unread
}

// Notifications returns a copy of the current list.
func (e *NotificationEngine) Notifications() []api.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]api.Notification, len(e.notifications))
	copy(out, e.notifications)
	return out
}
