package session

import (
	"sync"

	"github.com/google/uuid"
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

// EntityStore caches server-confirmed entities for one session. Values
// only enter through a server response; speculative state never does.
type EntityStore struct {
	mu              sync.RWMutex
	jobs            map[uuid.UUID]api.Job
	applications    map[uuid.UUID]api.Application
	inquiries       map[uuid.UUID]api.CourseInquiry
	trainingCenters map[uuid.UUID]api.TrainingCenterProfile
}

func NewEntityStore() *EntityStore {
	return &EntityStore{
		jobs:            make(map[uuid.UUID]api.Job),
		applications:    make(map[uuid.UUID]api.Application),
		inquiries:       make(map[uuid.UUID]api.CourseInquiry),
		trainingCenters: make(map[uuid.UUID]api.TrainingCenterProfile),
	}
}

func (s *EntityStore) Job(id uuid.UUID) (api.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

func (s *EntityStore) PutJob(job api.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Id] = job
}

func (s *EntityStore) Application(id uuid.UUID) (api.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	application, ok := s.applications[id]
	return application, ok
}

func (s *EntityStore) PutApplication(application api.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[application.Id] = application
}

func (s *EntityStore) Inquiry(id uuid.UUID) (api.CourseInquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inquiry, ok := s.inquiries[id]
	return inquiry, ok
}

func (s *EntityStore) PutInquiry(inquiry api.CourseInquiry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inquiries[inquiry.Id] = inquiry
}

func (s *EntityStore) TrainingCenter(id uuid.UUID) (api.TrainingCenterProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.trainingCenters[id]
	return profile, ok
}

func (s *EntityStore) PutTrainingCenter(profile api.TrainingCenterProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trainingCenters[profile.Id] = profile
}
