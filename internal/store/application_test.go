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
	"github.com/talentlink/marketplace/internal/store/model"
)

var _ = Describe("application store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM applications;")
	})

	Context("create", func() {
		It("starts every application in pending", func() {
			application, err := s.Application().Create(context.TODO(), *model.NewApplication(uuid.New(), uuid.New()))
			Expect(err).To(BeNil())
			Expect(application.Status).To(Equal(api.ApplicationStatusPending))
		})

		It("refuses a second application for the same pair", func() {
			jobID := uuid.New()
			jobSeekerID := uuid.New()

			_, err := s.Application().Create(context.TODO(), *model.NewApplication(jobID, jobSeekerID))
			Expect(err).To(BeNil())

			_, err = s.Application().Create(context.TODO(), *model.NewApplication(jobID, jobSeekerID))
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})

		It("allows the same seeker to apply to a different job", func() {
			jobSeekerID := uuid.New()

			_, err := s.Application().Create(context.TODO(), *model.NewApplication(uuid.New(), jobSeekerID))
			Expect(err).To(BeNil())

			_, err = s.Application().Create(context.TODO(), *model.NewApplication(uuid.New(), jobSeekerID))
			Expect(err).To(BeNil())
		})
	})

	Context("update status", func() {
		It("moves the application through the pipeline", func() {
			application, err := s.Application().Create(context.TODO(), *model.NewApplication(uuid.New(), uuid.New()))
			Expect(err).To(BeNil())

			updated, err := s.Application().UpdateStatus(context.TODO(), application.Id, api.ApplicationStatusReviewed)
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.ApplicationStatusReviewed))
		})

		It("reports not found for an unknown id", func() {
			_, err := s.Application().UpdateStatus(context.TODO(), uuid.New(), api.ApplicationStatusReviewed)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("list by job", func() {
		It("returns the applications for one job only", func() {
			jobID := uuid.New()
			_, err := s.Application().Create(context.TODO(), *model.NewApplication(jobID, uuid.New()))
			Expect(err).To(BeNil())
			_, err = s.Application().Create(context.TODO(), *model.NewApplication(jobID, uuid.New()))
			Expect(err).To(BeNil())
			_, err = s.Application().Create(context.TODO(), *model.NewApplication(uuid.New(), uuid.New()))
			Expect(err).To(BeNil())

			applications, err := s.Application().ListByJob(context.TODO(), jobID)
			Expect(err).To(BeNil())
			Expect(applications).To(HaveLen(2))
		})
	})
})
