package store_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/store"
)

var _ = Describe("bookmark store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

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
		gormdb.Exec("DELETE FROM bookmarks;")
	})

	Context("toggle", func() {
		It("creates on the first flip and removes on the second", func() {
			jobSeekerID := uuid.New()
			itemID := uuid.New()

			isBookmarked, err := s.Bookmark().Toggle(context.TODO(), jobSeekerID, api.ItemTypeJob, itemID)
			Expect(err).To(BeNil())
			Expect(isBookmarked).To(BeTrue())

			isBookmarked, err = s.Bookmark().Toggle(context.TODO(), jobSeekerID, api.ItemTypeJob, itemID)
			Expect(err).To(BeNil())
			Expect(isBookmarked).To(BeFalse())

			ids, err := s.Bookmark().ListIds(context.TODO(), jobSeekerID, api.ItemTypeJob)
			Expect(err).To(BeNil())
			Expect(ids).To(BeEmpty())
		})

		It("keeps job and course views separate", func() {
			jobSeekerID := uuid.New()
			itemID := uuid.New()

			_, err := s.Bookmark().Toggle(context.TODO(), jobSeekerID, api.ItemTypeJob, itemID)
			Expect(err).To(BeNil())

			courseIds, err := s.Bookmark().ListIds(context.TODO(), jobSeekerID, api.ItemTypeCourse)
			Expect(err).To(BeNil())
			Expect(courseIds).To(BeEmpty())

			jobIds, err := s.Bookmark().ListIds(context.TODO(), jobSeekerID, api.ItemTypeJob)
			Expect(err).To(BeNil())
			Expect(jobIds).To(Equal([]uuid.UUID{itemID}))
		})

		It("keeps per-seeker sets independent", func() {
			itemID := uuid.New()

			_, err := s.Bookmark().Toggle(context.TODO(), uuid.New(), api.ItemTypeJob, itemID)
			Expect(err).To(BeNil())

			ids, err := s.Bookmark().ListIds(context.TODO(), uuid.New(), api.ItemTypeJob)
			Expect(err).To(BeNil())
			Expect(ids).To(BeEmpty())
		})
	})
})
