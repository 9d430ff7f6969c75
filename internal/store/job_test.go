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

var _ = Describe("job store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("create and get", func() {
		It("creates a job in draft by default", func() {
			employerID := uuid.New()
			job, err := s.Job().Create(context.TODO(), *model.NewJobFromApiCreateResource(employerID, &api.JobCreate{Title: "backend engineer"}))
			Expect(err).To(BeNil())
			Expect(job.Status).To(Equal(api.JobStatusDraft))
			Expect(job.EmployerId).To(Equal(employerID))

			found, err := s.Job().Get(context.TODO(), job.Id)
			Expect(err).To(BeNil())
			Expect(found.Title).To(Equal("backend engineer"))
		})

		It("returns not found for an unknown id", func() {
			_, err := s.Job().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("update status", func() {
		It("returns the updated row", func() {
			job, err := s.Job().Create(context.TODO(), *model.NewJobFromApiCreateResource(uuid.New(), &api.JobCreate{Title: "job", Status: api.JobStatusDraft}))
			Expect(err).To(BeNil())

			updated, err := s.Job().UpdateStatus(context.TODO(), job.Id, api.JobStatusActive)
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.JobStatusActive))

			found, err := s.Job().Get(context.TODO(), job.Id)
			Expect(err).To(BeNil())
			Expect(found.Status).To(Equal(api.JobStatusActive))
		})

		It("reports not found for an unknown id", func() {
			_, err := s.Job().UpdateStatus(context.TODO(), uuid.New(), api.JobStatusActive)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("derived counters", func() {
		It("increments the application count atomically", func() {
			job, err := s.Job().Create(context.TODO(), *model.NewJobFromApiCreateResource(uuid.New(), &api.JobCreate{Title: "job"}))
			Expect(err).To(BeNil())
			Expect(job.ApplicationCount).To(Equal(0))

			Expect(s.Job().IncrementApplicationCount(context.TODO(), job.Id)).To(BeNil())
			Expect(s.Job().IncrementApplicationCount(context.TODO(), job.Id)).To(BeNil())

			found, err := s.Job().Get(context.TODO(), job.Id)
			Expect(err).To(BeNil())
			Expect(found.ApplicationCount).To(Equal(2))
		})
	})

	Context("list by employer", func() {
		It("returns only the employer's jobs", func() {
			employerID := uuid.New()
			_, err := s.Job().Create(context.TODO(), *model.NewJobFromApiCreateResource(employerID, &api.JobCreate{Title: "mine"}))
			Expect(err).To(BeNil())
			_, err = s.Job().Create(context.TODO(), *model.NewJobFromApiCreateResource(uuid.New(), &api.JobCreate{Title: "someone else's"}))
			Expect(err).To(BeNil())

			jobs, err := s.Job().ListByEmployer(context.TODO(), employerID)
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].Title).To(Equal("mine"))
		})
	})

	Context("delete", func() {
		It("removes the posting", func() {
			job, err := s.Job().Create(context.TODO(), *model.NewJobFromApiCreateResource(uuid.New(), &api.JobCreate{Title: "job"}))
			Expect(err).To(BeNil())

			Expect(s.Job().Delete(context.TODO(), job.Id)).To(BeNil())

			_, err = s.Job().Get(context.TODO(), job.Id)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})
})
