package lifecycle

import (
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

type edge struct {
	from string
	to   string
}

var (
	employerOrAdmin = []api.Role{api.RoleEmployer, api.RoleAdmin}
	trainingCenter  = []api.Role{api.RoleTrainingCenter}
	adminOnly       = []api.Role{api.RoleAdmin}
)

var tables = map[Kind]map[edge][]api.Role{
	KindJob: {
		{from: string(api.JobStatusDraft), to: string(api.JobStatusActive)}:  employerOrAdmin,
		{from: string(api.JobStatusActive), to: string(api.JobStatusPaused)}: employerOrAdmin,
		{from: string(api.JobStatusPaused), to: string(api.JobStatusActive)}: employerOrAdmin,
		{from: string(api.JobStatusDraft), to: string(api.JobStatusClosed)}:  employerOrAdmin,
		{from: string(api.JobStatusActive), to: string(api.JobStatusClosed)}: employerOrAdmin,
		{from: string(api.JobStatusPaused), to: string(api.JobStatusClosed)}: employerOrAdmin,
	},
	KindCourseInquiry: {
		{from: string(api.InquiryStatusPending), to: string(api.InquiryStatusContacted)}:  trainingCenter,
		{from: string(api.InquiryStatusPending), to: string(api.InquiryStatusEnrolled)}:   trainingCenter,
		{from: string(api.InquiryStatusContacted), to: string(api.InquiryStatusEnrolled)}: trainingCenter,
		{from: string(api.InquiryStatusPending), to: string(api.InquiryStatusClosed)}:     trainingCenter,
		{from: string(api.InquiryStatusContacted), to: string(api.InquiryStatusClosed)}:   trainingCenter,
	},
	KindVerification: {
		{from: VerificationUnverified, to: VerificationVerified}: adminOnly,
		{from: VerificationVerified, to: VerificationUnverified}: adminOnly,
	},
	KindApplication: applicationEdges(),
}

var terminals = map[Kind]map[string]bool{
	KindJob: {
		string(api.JobStatusClosed): true,
	},
	KindCourseInquiry: {
		string(api.InquiryStatusEnrolled): true,
		string(api.InquiryStatusClosed):   true,
	},
	KindApplication:  {},
	KindVerification: {},
}

// applicationEdges builds the application table: all six non-pending
// statuses are mutually reachable and reachable from pending. No edge
// leads back to pending.
func applicationEdges() map[edge][]api.Role {
	targets := []api.ApplicationStatus{
		api.ApplicationStatusReviewed,
		api.ApplicationStatusShortlisted,
		api.ApplicationStatusInterview,
		api.ApplicationStatusOffered,
		api.ApplicationStatusRejected,
		api.ApplicationStatusHired,
	}

	edges := make(map[edge][]api.Role)
	for _, to := range targets {
		edges[edge{from: string(api.ApplicationStatusPending), to: string(to)}] = employerOrAdmin
		for _, from := range targets {
			if from == to {
				continue
			}
			edges[edge{from: string(from), to: string(to)}] = employerOrAdmin
		}
	}
	return edges
}
