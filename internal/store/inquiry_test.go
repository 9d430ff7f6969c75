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

var _ = Describe("course inquiry store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM course_inquiries;")
	})

	Context("create", func() {
		It("starts in pending with the registered seeker attached", func() {
			jobSeekerID := uuid.New()
			inquiry, err := s.CourseInquiry().Create(context.TODO(), *model.NewCourseInquiryFromApiCreateResource(uuid.New(), &jobSeekerID, &api.InquiryCreate{}))
			Expect(err).To(BeNil())
			Expect(inquiry.Status).To(Equal(api.InquiryStatusPending))
			Expect(*inquiry.JobSeekerId).To(Equal(jobSeekerID))
		})

		It("accepts anonymous contact details", func() {
			inquiry, err := s.CourseInquiry().Create(context.TODO(), *model.NewCourseInquiryFromApiCreateResource(uuid.New(), nil, &api.InquiryCreate{
				ContactName:  "Alex Doe",
				ContactEmail: "alex@example.com",
			}))
			Expect(err).To(BeNil())
			Expect(inquiry.JobSeekerId).To(BeNil())
			Expect(inquiry.ContactEmail).To(Equal("alex@example.com"))
		})
	})

	Context("update", func() {
		It("updates status and notes independently", func() {
			inquiry, err := s.CourseInquiry().Create(context.TODO(), *model.NewCourseInquiryFromApiCreateResource(uuid.New(), nil, &api.InquiryCreate{
				ContactName:  "Alex Doe",
				ContactEmail: "alex@example.com",
			}))
			Expect(err).To(BeNil())

			contacted := api.InquiryStatusContacted
			updated, err := s.CourseInquiry().Update(context.TODO(), inquiry.Id, &contacted, nil)
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(api.InquiryStatusContacted))

			notes := "left a voicemail"
			updated, err = s.CourseInquiry().Update(context.TODO(), inquiry.Id, nil, &notes)
			Expect(err).To(BeNil())
			Expect(updated.Notes).To(Equal("left a voicemail"))
			// status untouched by a notes-only edit
			Expect(updated.Status).To(Equal(api.InquiryStatusContacted))
		})

		It("reports not found for an unknown id", func() {
			notes := "notes"
			_, err := s.CourseInquiry().Update(context.TODO(), uuid.New(), nil, &notes)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("orphaning", func() {
		It("clears the course reference but keeps the inquiry", func() {
			courseID := uuid.New()
			inquiry, err := s.CourseInquiry().Create(context.TODO(), *model.NewCourseInquiryFromApiCreateResource(uuid.New(), nil, &api.InquiryCreate{
				CourseId:     &courseID,
				ContactName:  "Alex Doe",
				ContactEmail: "alex@example.com",
			}))
			Expect(err).To(BeNil())

			Expect(s.CourseInquiry().OrphanByCourse(context.TODO(), courseID)).To(BeNil())

			found, err := s.CourseInquiry().Get(context.TODO(), inquiry.Id)
			Expect(err).To(BeNil())
			Expect(found.CourseId).To(BeNil())
			Expect(found.ContactEmail).To(Equal("alex@example.com"))
		})
	})
})
