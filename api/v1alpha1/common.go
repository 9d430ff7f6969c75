package v1alpha1

func StringToJobStatus(s string) (JobStatus, bool) {
	switch JobStatus(s) {
	case JobStatusDraft, JobStatusActive, JobStatusPaused, JobStatusClosed:
		return JobStatus(s), true
	default:
		return "", false
	}
}

func StringToApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusOffered, ApplicationStatusRejected,
		ApplicationStatusHired:
		return ApplicationStatus(s), true
	default:
		return "", false
	}
}

func StringToInquiryStatus(s string) (InquiryStatus, bool) {
	switch InquiryStatus(s) {
	case InquiryStatusPending, InquiryStatusContacted, InquiryStatusEnrolled, InquiryStatusClosed:
		return InquiryStatus(s), true
	default:
		return "", false
	}
}

func StringToItemType(s string) (ItemType, bool) {
	switch ItemType(s) {
	case ItemTypeJob, ItemTypeCourse:
		return ItemType(s), true
	default:
		return "", false
	}
}

func StringToRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleJobSeeker, RoleEmployer, RoleTrainingCenter, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}
