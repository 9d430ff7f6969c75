package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/service"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/internal/store/model"
)

var _ = Describe("notification service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.ServiceHandler
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		srv = service.NewServiceHandler(s)
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM notifications;")
	})

	notify := func(ownerID uuid.UUID) *api.Notification {
		notification, err := s.Notification().Create(context.TODO(), model.Notification{
			OwnerID: ownerID,
			Kind:    "application_update",
			Title:   "your application moved forward",
		})
		Expect(err).To(BeNil())
		return notification
	}

	It("lists only the caller's notifications with the unread count", func() {
		ownerID := uuid.New()
		notify(ownerID)
		notify(ownerID)
		notify(uuid.New())

		list, err := srv.ListNotifications(userContext(ownerID, api.RoleJobSeeker), 0)
		Expect(err).To(BeNil())
		Expect(list.Data).To(HaveLen(2))
		Expect(list.UnreadCount).To(Equal(2))
	})

	It("drops the unread count when one is marked read", func() {
		ownerID := uuid.New()
		ctx := userContext(ownerID, api.RoleJobSeeker)
		notification := notify(ownerID)
		notify(ownerID)

		Expect(srv.MarkNotificationRead(ctx, notification.Id)).To(BeNil())

		count, err := srv.GetUnreadCount(ctx)
		Expect(err).To(BeNil())
		Expect(count.Count).To(Equal(1))
	})

	It("clears everything on mark-all-read", func() {
		ownerID := uuid.New()
		ctx := userContext(ownerID, api.RoleJobSeeker)
		notify(ownerID)
		notify(ownerID)

		Expect(srv.MarkAllNotificationsRead(ctx)).To(BeNil())

		count, err := srv.GetUnreadCount(ctx)
		Expect(err).To(BeNil())
		Expect(count.Count).To(Equal(0))
	})

	It("hides other owners' notifications from mutation", func() {
		notification := notify(uuid.New())
		strangerCtx := userContext(uuid.New(), api.RoleJobSeeker)

		err := srv.MarkNotificationRead(strangerCtx, notification.Id)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))

		err = srv.DeleteNotification(strangerCtx, notification.Id)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
	})

	It("deletes for the owner", func() {
		ownerID := uuid.New()
		ctx := userContext(ownerID, api.RoleJobSeeker)
		notification := notify(ownerID)

		Expect(srv.DeleteNotification(ctx, notification.Id)).To(BeNil())

		list, err := srv.ListNotifications(ctx, 0)
		Expect(err).To(BeNil())
		Expect(list.Data).To(BeEmpty())
	})

	It("refuses anonymous callers", func() {
		_, err := srv.ListNotifications(context.TODO(), 0)
		Expect(err).To(BeAssignableToTypeOf(&service.ErrUnauthenticated{}))
	})
})
