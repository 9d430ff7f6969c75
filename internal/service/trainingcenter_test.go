package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	api "github.com/talentlink/marketplace/api/v1alpha1"
	"github.com/talentlink/marketplace/internal/config"
	"github.com/talentlink/marketplace/internal/lifecycle"
	"github.com/talentlink/marketplace/internal/service"
	"github.com/talentlink/marketplace/internal/store"
	"github.com/talentlink/marketplace/internal/store/model"
)

var _ = Describe("training center verification", Ordered, func() {
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
		gormdb.Exec("DELETE FROM training_center_profiles;")
	})

	newProfile := func() *api.TrainingCenterProfile {
		profile, err := s.TrainingCenter().Create(context.TODO(), model.TrainingCenterProfile{
			ID:   uuid.New(),
			Name: "acme training",
		})
		Expect(err).To(BeNil())
		return profile
	}

	It("lets an admin verify and unverify", func() {
		profile := newProfile()
		adminCtx := userContext(uuid.New(), api.RoleAdmin)

		updated, err := srv.SetVerification(adminCtx, profile.Id, api.VerificationUpdate{IsVerified: true})
		Expect(err).To(BeNil())
		Expect(updated.IsVerified).To(BeTrue())

		updated, err = srv.SetVerification(adminCtx, profile.Id, api.VerificationUpdate{IsVerified: false})
		Expect(err).To(BeNil())
		Expect(updated.IsVerified).To(BeFalse())
	})

	It("treats re-sending the current value as a no-op", func() {
		profile := newProfile()
		adminCtx := userContext(uuid.New(), api.RoleAdmin)

		updated, err := srv.SetVerification(adminCtx, profile.Id, api.VerificationUpdate{IsVerified: false})
		Expect(err).To(BeNil())
		Expect(updated.IsVerified).To(BeFalse())
	})

	It("rejects non-admin callers as unauthorized", func() {
		profile := newProfile()

		for _, role := range []api.Role{api.RoleEmployer, api.RoleJobSeeker, api.RoleTrainingCenter} {
			_, err := srv.SetVerification(userContext(uuid.New(), role), profile.Id, api.VerificationUpdate{IsVerified: true})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrTransitionRejected{}))
			Expect(err.(*service.ErrTransitionRejected).Reason).To(Equal(lifecycle.ReasonUnauthorized))
		}
	})

	It("reports not found for an unknown profile", func() {
		_, err := srv.SetVerification(userContext(uuid.New(), api.RoleAdmin), uuid.New(), api.VerificationUpdate{IsVerified: true})
		Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
	})
})
