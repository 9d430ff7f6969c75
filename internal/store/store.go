package store

import (
	"context"

	"github.com/talentlink/marketplace/internal/store/model"
	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Job() Job
	Application() Application
	CourseInquiry() CourseInquiry
	TrainingCenter() TrainingCenter
	Bookmark() Bookmark
	Notification() Notification
	InitialMigration() error
	Close() error
}

type DataStore struct {
	db             *gorm.DB
	job            Job
	application    Application
	courseInquiry  CourseInquiry
	trainingCenter TrainingCenter
	bookmark       Bookmark
	notification   Notification
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:             db,
		job:            NewJobStore(db),
		application:    NewApplicationStore(db),
		courseInquiry:  NewCourseInquiryStore(db),
		trainingCenter: NewTrainingCenterStore(db),
		bookmark:       NewBookmarkStore(db),
		notification:   NewNotificationStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) Job() Job {
	return s.job
}

func (s *DataStore) Application() Application {
	return s.application
}

func (s *DataStore) CourseInquiry() CourseInquiry {
	return s.courseInquiry
}

func (s *DataStore) TrainingCenter() TrainingCenter {
	return s.trainingCenter
}

func (s *DataStore) Bookmark() Bookmark {
	return s.bookmark
}

func (s *DataStore) Notification() Notification {
	return s.notification
}

func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(
		&model.Job{},
		&model.Application{},
		&model.CourseInquiry{},
		&model.TrainingCenterProfile{},
		&model.Bookmark{},
		&model.Notification{},
	)
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
