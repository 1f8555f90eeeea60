package dto

// CreateMentorshipRequest represents a student's request for mentorship
type CreateMentorshipRequest struct {
	Alumni  string `json:"alumni" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// RespondMentorshipRequest represents an alumni's accept/reject decision
type RespondMentorshipRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// MentorRecommendation is one entry of the ranked mentor list returned by the
// recommendation service, or of the unscored fallback list.
type MentorRecommendation struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	CurrentCompany string   `json:"currentCompany,omitempty"`
	CurrentRole    string   `json:"currentRole,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	MatchScore     float64  `json:"matchScore"`
	Fallback       bool     `json:"fallback,omitempty"`
}
