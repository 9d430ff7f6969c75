package store_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/internal/store/model"
)

var _ = Describe("notification store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	newNotification := func(ownerID uuid.UUID) model.Notification {
		return model.Notification{
			OwnerID: ownerID,
			Kind:    "application_update",
			Title:   "your application moved forward",
		}
	}

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM notifications;")
	})

	Context("unread count", func() {
		It("counts only the owner's unread notifications", func() {
			ownerID := uuid.New()
			_, err := s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())
			_, err = s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())
			_, err = s.Notification().Create(context.TODO(), newNotification(uuid.New()))
			Expect(err).To(BeNil())

			count, err := s.Notification().UnreadCount(context.TODO(), ownerID)
			Expect(err).To(BeNil())
			Expect(count).To(Equal(2))
		})
	})

	Context("mark read", func() {
		It("drops the unread count", func() {
			ownerID := uuid.New()
			notification, err := s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())

			Expect(s.Notification().MarkRead(context.TODO(), ownerID, notification.Id)).To(BeNil())

			count, err := s.Notification().UnreadCount(context.TODO(), ownerID)
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("is idempotent on an already-read notification", func() {
			ownerID := uuid.New()
			notification, err := s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())

			Expect(s.Notification().MarkRead(context.TODO(), ownerID, notification.Id)).To(BeNil())
			Expect(s.Notification().MarkRead(context.TODO(), ownerID, notification.Id)).To(BeNil())
		})

		It("does not touch another owner's notification", func() {
			notification, err := s.Notification().Create(context.TODO(), newNotification(uuid.New()))
			Expect(err).To(BeNil())

			err = s.Notification().MarkRead(context.TODO(), uuid.New(), notification.Id)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("mark all read", func() {
		It("clears the owner's unread set only", func() {
			ownerID := uuid.New()
			otherID := uuid.New()
			_, err := s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())
			_, err = s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())
			_, err = s.Notification().Create(context.TODO(), newNotification(otherID))
			Expect(err).To(BeNil())

			Expect(s.Notification().MarkAllRead(context.TODO(), ownerID)).To(BeNil())

			count, err := s.Notification().UnreadCount(context.TODO(), ownerID)
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))

			otherCount, err := s.Notification().UnreadCount(context.TODO(), otherID)
			Expect(err).To(BeNil())
			Expect(otherCount).To(Equal(1))
		})
	})

	Context("delete", func() {
		It("removes the notification for its owner", func() {
			ownerID := uuid.New()
			notification, err := s.Notification().Create(context.TODO(), newNotification(ownerID))
			Expect(err).To(BeNil())

			Expect(s.Notification().Delete(context.TODO(), ownerID, notification.Id)).To(BeNil())

			list, err := s.Notification().List(context.TODO(), ownerID, 10)
			Expect(err).To(BeNil())
			Expect(list).To(BeEmpty())
		})

		It("reports not found for someone else's notification", func() {
			notification, err := s.Notification().Create(context.TODO(), newNotification(uuid.New()))
			Expect(err).To(BeNil())

			err = s.Notification().Delete(context.TODO(), uuid.New(), notification.Id)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})
})
