package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

// MentorshipStatus defines the lifecycle state of a mentorship request
type MentorshipStatus string

const (
	MentorshipPending  MentorshipStatus = "pending"
	MentorshipAccepted MentorshipStatus = "accepted"
	MentorshipRejected MentorshipStatus = "rejected"
)

// IsTerminal reports whether the status can no longer change.
func (s MentorshipStatus) IsTerminal() bool {
	return s == MentorshipAccepted || s == MentorshipRejected
}

// DonationStatus defines the payment state of a donation
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
)

// NotificationType tags the origin of a notification
type NotificationType string

const (
	NotificationMentorshipRequest NotificationType = "mentorship_request"
	NotificationMentorshipUpdate  NotificationType = "mentorship_update"
	NotificationSystem            NotificationType = "system"
)

// JobType distinguishes full positions from internships
type JobType string

const (
	JobTypeJob        JobType = "job"
	JobTypeInternship JobType = "internship"
)
