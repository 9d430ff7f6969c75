package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/auth"
	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/service"
	"github.com/talentlink/marketplace/internal/store"
)

func userContext(id uuid.UUID, role api.Role) context.Context {
	return auth.NewUserContext(context.TODO(), auth.User{ID: id, Role: role})
}

var _ = Describe("job service", Ordered, func() {
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
		gormdb.Exec("DELETE FROM jobs;")
	})

	Context("create", func() {
		It("lets an employer post a draft", func() {
			employerID := uuid.New()
			job, err := srv.CreateJob(userContext(employerID, api.RoleEmployer), api.JobCreate{Title: "backend engineer"})
			Expect(err).To(BeNil())
			Expect(job.Status).To(Equal(api.JobStatusDraft))
			Expect(job.EmployerId).To(Equal(employerID))
		})

		It("refuses job seekers", func() {
			_, err := srv.CreateJob(userContext(uuid.New(), api.RoleJobSeeker), api.JobCreate{Title: "nope"})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})

		It("refuses anonymous callers", func() {
			_, err := srv.CreateJob(context.TODO(), api.JobCreate{Title: "nope"})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrUnauthenticated{}))
		})

		It("refuses creation in paused or closed", func() {
			_, err := srv.CreateJob(userContext(uuid.New(), api.RoleEmployer), api.JobCreate{Title: "nope", Status: api.JobStatusPaused})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrTransitionRejected{}))
		})
	})

	Context("status transitions", func() {
		It("applies a legal transition and returns the confirmed job", func() {
			employerID := uuid.New()
			ctx := userContext(employerID, api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job"})
			Expect(err).To(BeNil())

			updated, err := srv.UpdateJobStatus(ctx, job.Id, api.JobStatusUpdate{Status: api.JobStatusActive})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.JobStatusActive))
		})

		It("treats a same-status request as a no-op", func() {
			employerID := uuid.New()
			ctx := userContext(employerID, api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job", Status: api.JobStatusActive})
			Expect(err).To(BeNil())

			updated, err := srv.UpdateJobStatus(ctx, job.Id, api.JobStatusUpdate{Status: api.JobStatusActive})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.JobStatusActive))
		})

		It("rejects a transition with no edge", func() {
			employerID := uuid.New()
			ctx := userContext(employerID, api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job"})
			Expect(err).To(BeNil())

			// draft -> paused is not a legal edge
			_, err = srv.UpdateJobStatus(ctx, job.Id, api.JobStatusUpdate{Status: api.JobStatusPaused})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrTransitionRejected{}))
			Expect(err.(*service.ErrTransitionRejected).Reason).To(Equal(lifecycle.ReasonNoSuchEdge))
		})

		It("rejects any transition out of closed", func() {
			employerID := uuid.New()
			ctx := userContext(employerID, api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job", Status: api.JobStatusActive})
			Expect(err).To(BeNil())

			_, err = srv.UpdateJobStatus(ctx, job.Id, api.JobStatusUpdate{Status: api.JobStatusClosed})
			Expect(err).To(BeNil())

			_, err = srv.UpdateJobStatus(ctx, job.Id, api.JobStatusUpdate{Status: api.JobStatusActive})
			rejected := err.(*service.ErrTransitionRejected)
			Expect(rejected.Reason).To(Equal(lifecycle.ReasonTerminalState))
		})

		It("refuses a non-owning employer", func() {
			ctx := userContext(uuid.New(), api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job"})
			Expect(err).To(BeNil())

			otherCtx := userContext(uuid.New(), api.RoleEmployer)
			_, err = srv.UpdateJobStatus(otherCtx, job.Id, api.JobStatusUpdate{Status: api.JobStatusActive})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})

		It("lets an admin transition any job", func() {
			ctx := userContext(uuid.New(), api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job"})
			Expect(err).To(BeNil())

			adminCtx := userContext(uuid.New(), api.RoleAdmin)
			updated, err := srv.UpdateJobStatus(adminCtx, job.Id, api.JobStatusUpdate{Status: api.JobStatusActive})
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.JobStatusActive))
		})

		It("reports not found for an unknown job", func() {
			ctx := userContext(uuid.New(), api.RoleEmployer)
			_, err := srv.UpdateJobStatus(ctx, uuid.New(), api.JobStatusUpdate{Status: api.JobStatusActive})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("delete", func() {
		It("removes the posting regardless of status", func() {
			ctx := userContext(uuid.New(), api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job", Status: api.JobStatusActive})
			Expect(err).To(BeNil())

			Expect(srv.DeleteJob(ctx, job.Id)).To(BeNil())

			_, err = srv.GetJob(ctx, job.Id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})

		It("refuses non-owners", func() {
			ctx := userContext(uuid.New(), api.RoleEmployer)
			job, err := srv.CreateJob(ctx, api.JobCreate{Title: "job"})
			Expect(err).To(BeNil())

			err = srv.DeleteJob(userContext(uuid.New(), api.RoleEmployer), job.Id)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrForbidden{}))
		})
	})
})
