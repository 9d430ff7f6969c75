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
)

var _ = Describe("bookmark service", Ordered, func() {
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
		gormdb.Exec("DELETE FROM bookmarks;")
	})

	It("adds on the first toggle and removes on the second", func() {
		seekerCtx := userContext(uuid.New(), api.RoleJobSeeker)
		itemID := uuid.New()

		response, err := srv.ToggleBookmark(seekerCtx, api.BookmarkToggleRequest{ItemType: api.ItemTypeJob, ItemId: itemID})
		Expect(err).To(BeNil())
		Expect(response.IsBookmarked).To(BeTrue())

		response, err = srv.ToggleBookmark(seekerCtx, api.BookmarkToggleRequest{ItemType: api.ItemTypeJob, ItemId: itemID})
		Expect(err).To(BeNil())
		Expect(response.IsBookmarked).To(BeFalse())

		list, err := srv.ListBookmarkIds(seekerCtx, api.ItemTypeJob)
		Expect(err).To(BeNil())
		Expect(list.Ids).To(BeEmpty())
	})

	It("keeps job and course bookmarks apart", func() {
		seekerCtx := userContext(uuid.New(), api.RoleJobSeeker)
		itemID := uuid.New()

		_, err := srv.ToggleBookmark(seekerCtx, api.BookmarkToggleRequest{ItemType: api.ItemTypeJob, ItemId: itemID})
		Expect(err).To(BeNil())

		courses, err := srv.ListBookmarkIds(seekerCtx, api.ItemTypeCourse)
		Expect(err).To(BeNil())
		Expect(courses.Ids).To(BeEmpty())

		jobs, err := srv.ListBookmarkIds(seekerCtx, api.ItemTypeJob)
		Expect(err).To(BeNil())
		Expect(jobs.Ids).To(Equal([]uuid.UUID{itemID}))
	})

	It("refuses everyone but job seekers", func() {
		for _, role := range []api.Role{api.RoleEmployer, api.RoleTrainingCenter, api.RoleAdmin} {
			_, err := srv.ToggleBookmark(userContext(uuid.New(), role), api.BookmarkToggleRequest{ItemType: api.ItemTypeJob, ItemId: uuid.New()})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))

			_, err = srv.ListBookmarkIds(userContext(uuid.New(), role), api.ItemTypeJob)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		}
	})

	It("refuses anonymous callers", func() {
		_, err := srv.ToggleBookmark(context.TODO(), api.BookmarkToggleRequest{ItemType: api.ItemTypeJob, ItemId: uuid.New()})
		Expect(err).To(BeAssignableToTypeOf(&service.ErrUnauthenticated{}))
	})
})
