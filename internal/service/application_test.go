package service_test

import (
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/service"
	"github.com/talentlink/marketplace/internal/store"
)

var _ = Describe("application service", Ordered, func() {
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
		gormdb.Exec("DELETE FROM applications;")
		gormdb.Exec("DELETE FROM jobs;")
	})

	newJob := func(employerID uuid.UUID) *api.Job {
		job, err := srv.CreateJob(userContext(employerID, api.RoleEmployer), api.JobCreate{Title: "job", Status: api.JobStatusActive})
		Expect(err).To(BeNil())
		return job
	}

	Context("apply", func() {
		It("creates a pending application and bumps the job counter", func() {
			job := newJob(uuid.New())
			seekerCtx := userContext(uuid.New(), api.RoleJobSeeker)

			application, err := srv.CreateApplication(seekerCtx, job.Id)
			Expect(err).To(BeNil())
			Expect(application.Status).To(Equal(api.ApplicationStatusPending))

			found, err := srv.GetJob(seekerCtx, job.Id)
			Expect(err).To(BeNil())
			Expect(found.ApplicationCount).To(Equal(1))
		})

		It("refuses a second application from the same seeker", func() {
			job := newJob(uuid.New())
			seekerCtx := userContext(uuid.New(), api.RoleJobSeeker)

			_, err := srv.CreateApplication(seekerCtx, job.Id)
			Expect(err).To(BeNil())

			_, err = srv.CreateApplication(seekerCtx, job.Id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrDuplicateApplication{}))

			// the failed attempt must not bump the counter
			found, err := srv.GetJob(seekerCtx, job.Id)
			Expect(err).To(BeNil())
			Expect(found.ApplicationCount).To(Equal(1))
		})

		It("refuses employers", func() {
			job := newJob(uuid.New())
			_, err := srv.CreateApplication(userContext(uuid.New(), api.RoleEmployer), job.Id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})

		It("reports not found for an unknown job", func() {
			_, err := srv.CreateApplication(userContext(uuid.New(), api.RoleJobSeeker), uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("read access", func() {
		It("lets the owning seeker, the job's employer and admins read", func() {
			employerID := uuid.New()
			job := newJob(employerID)
			seekerID := uuid.New()

			application, err := srv.CreateApplication(userContext(seekerID, api.RoleJobSeeker), job.Id)
			Expect(err).To(BeNil())

			_, err = srv.GetApplication(userContext(seekerID, api.RoleJobSeeker), application.Id)
			Expect(err).To(BeNil())

			_, err = srv.GetApplication(userContext(employerID, api.RoleEmployer), application.Id)
			Expect(err).To(BeNil())

			_, err = srv.GetApplication(userContext(uuid.New(), api.RoleAdmin), application.Id)
			Expect(err).To(BeNil())
		})

		It("hides the application from everyone else", func() {
			job := newJob(uuid.New())
			application, err := srv.CreateApplication(userContext(uuid.New(), api.RoleJobSeeker), job.Id)
			Expect(err).To(BeNil())

			_, err = srv.GetApplication(userContext(uuid.New(), api.RoleJobSeeker), application.Id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))

			_, err = srv.GetApplication(userContext(uuid.New(), api.RoleEmployer), application.Id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})

	Context("status transitions", func() {
		It("moves along the pipeline and back", func() {
			employerID := uuid.New()
			job := newJob(employerID)
			employerCtx := userContext(employerID, api.RoleEmployer)

			application, err := srv.CreateApplication(userContext(uuid.New(), api.RoleJobSeeker), job.Id)
			Expect(err).To(BeNil())

			updated, err := srv.UpdateApplicationStatus(employerCtx, application.Id, api.ApplicationStatusUpdate{Status: api.ApplicationStatusShortlisted})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.ApplicationStatusShortlisted))

			// lateral move is legal
			updated, err = srv.UpdateApplicationStatus(employerCtx, application.Id, api.ApplicationStatusUpdate{Status: api.ApplicationStatusReviewed})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.ApplicationStatusReviewed))
		})

		It("never returns to pending", func() {
			employerID := uuid.New()
			job := newJob(employerID)
			employerCtx := userContext(employerID, api.RoleEmployer)

			application, err := srv.CreateApplication(userContext(uuid.New(), api.RoleJobSeeker), job.Id)
			Expect(err).To(BeNil())

			_, err = srv.UpdateApplicationStatus(employerCtx, application.Id, api.ApplicationStatusUpdate{Status: api.ApplicationStatusReviewed})
			Expect(err).To(BeNil())

			_, err = srv.UpdateApplicationStatus(employerCtx, application.Id, api.ApplicationStatusUpdate{Status: api.ApplicationStatusPending})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrTransitionRejected{}))
			Expect(err.(*service.ErrTransitionRejected).Reason).To(Equal(lifecycle.ReasonNoSuchEdge))
		})

		It("refuses the applying seeker", func() {
			job := newJob(uuid.New())
			seekerID := uuid.New()

			application, err := srv.CreateApplication(userContext(seekerID, api.RoleJobSeeker), job.Id)
			Expect(err).To(BeNil())

			_, err = srv.UpdateApplicationStatus(userContext(seekerID, api.RoleJobSeeker), application.Id, api.ApplicationStatusUpdate{Status: api.ApplicationStatusReviewed})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})
})
