package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
	"github.com/deniz/alumlink/internal/pkg/recommender"
)

// MentorshipService handles the request workflow between students and alumni
type MentorshipService struct {
	mentorshipRepo repositories.MentorshipRepository
	userRepo       repositories.UserRepository
	recommender    *recommender.Client
	logger         zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(
	mentorshipRepo repositories.MentorshipRepository,
	userRepo repositories.UserRepository,
	recommenderClient *recommender.Client,
	logger zerolog.Logger,
) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
		recommender:    recommenderClient,
		logger:         logger,
	}
}

// CreateRequest inserts a new pending mentorship request from the student
func (s *MentorshipService) CreateRequest(ctx context.Context, studentID primitive.ObjectID, req *dto.CreateMentorshipRequest) (*models.MentorshipRequest, error) {
	alumniID, err := primitive.ObjectIDFromHex(req.Alumni)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid alumni id")
	}

	// The target must exist and be a claimable mentor, not an arbitrary user.
	alumni, err := s.userRepo.GetByID(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if alumni.Role != models.RoleAlumni {
		return nil, apperrors.NewValidationError("target user is not an alumni")
	}

	request := &models.MentorshipRequest{
		Student:   studentID,
		Alumni:    alumniID,
		Message:   req.Message,
		Status:    models.MentorshipPending,
		CreatedAt: time.Now(),
	}

	id, err := s.mentorshipRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = id

	s.logger.Info().
		Str("student", studentID.Hex()).
		Str("alumni", alumniID.Hex()).
		Msg("Mentorship request created")
	return request, nil
}

// Respond moves a pending request to accepted or rejected. The transition is
// a compare-and-swap on the status field, so a request that already left
// pending is never modified again.
func (s *MentorshipService) Respond(ctx context.Context, requestID, responderID primitive.ObjectID, status string) (*models.MentorshipRequest, error) {
	newStatus := models.MentorshipStatus(status)
	if newStatus != models.MentorshipAccepted && newStatus != models.MentorshipRejected {
		return nil, apperrors.NewValidationError("status must be accepted or rejected")
	}

	matched, err := s.mentorshipRepo.RespondIfPending(ctx, requestID, responderID, newStatus)
	if err != nil {
		return nil, err
	}

	if !matched {
		// Diagnose why the precondition failed
		request, err := s.mentorshipRepo.GetByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if request.Alumni != responderID {
			return nil, apperrors.NewForbiddenError("not authorized to respond to this request")
		}
		return nil, apperrors.NewConflictError("request has already been responded to")
	}

	request, err := s.mentorshipRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request", requestID.Hex()).
		Str("status", string(newStatus)).
		Msg("Mentorship request responded")
	return request, nil
}

// ListForAlumni returns all requests targeting the alumni, newest first
func (s *MentorshipService) ListForAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]*models.MentorshipRequest, error) {
	return s.mentorshipRepo.ListByAlumni(ctx, alumniID, nil)
}

// ListAcceptedForAlumni returns the alumni's accepted requests ("my mentees")
func (s *MentorshipService) ListAcceptedForAlumni(ctx context.Context, alumniID primitive.ObjectID) ([]*models.MentorshipRequest, error) {
	accepted := models.MentorshipAccepted
	return s.mentorshipRepo.ListByAlumni(ctx, alumniID, &accepted)
}

// ListForStudent returns the student's requests, newest first
func (s *MentorshipService) ListForStudent(ctx context.Context, studentID primitive.ObjectID) ([]*models.MentorshipRequest, error) {
	return s.mentorshipRepo.ListByStudent(ctx, studentID)
}

// RecommendMentors asks the recommendation service to rank all alumni against
// the student's skills. On any failure it degrades to the unscored alumni
// list with a fallback marker instead of surfacing the error.
func (s *MentorshipService) RecommendMentors(ctx context.Context, studentID primitive.ObjectID) ([]dto.MentorRecommendation, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	alumni, err := s.userRepo.ListByRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	roster := make([]recommender.Mentor, 0, len(alumni))
	for _, a := range alumni {
		roster = append(roster, recommender.Mentor{
			ID:             a.ID.Hex(),
			FirstName:      a.FirstName,
			LastName:       a.LastName,
			Email:          a.Email,
			CurrentCompany: a.CurrentCompany,
			CurrentRole:    a.CurrentRole,
			Skills:         a.Skills,
		})
	}

	ranked, err := s.recommender.RecommendMentors(ctx, recommender.StudentProfile{
		Skills:    student.Skills,
		Interests: []string{},
	}, roster)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Recommendation service failed, returning unscored fallback")
		return toRecommendations(roster, true), nil
	}

	return toRecommendations(ranked, false), nil
}

func toRecommendations(mentors []recommender.Mentor, fallback bool) []dto.MentorRecommendation {
	recommendations := make([]dto.MentorRecommendation, 0, len(mentors))
	for _, m := range mentors {
		recommendations = append(recommendations, dto.MentorRecommendation{
			ID:             m.ID,
			FirstName:      m.FirstName,
			LastName:       m.LastName,
			Email:          m.Email,
			CurrentCompany: m.CurrentCompany,
			CurrentRole:    m.CurrentRole,
			Skills:         m.Skills,
			MatchScore:     m.MatchScore,
			Fallback:       fallback,
		})
	}
	return recommendations
}
