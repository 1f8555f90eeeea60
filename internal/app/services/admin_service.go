package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
	"github.com/deniz/alumlink/internal/pkg/auth"
	"github.com/deniz/alumlink/internal/pkg/validation"
)

// placeholderPassword is the password hashed into imported placeholder
// records. It can never authenticate because an unclaimed placeholder is
// rejected at login before the password comparison, and the hash is replaced
// when the record is claimed.
const placeholderPassword = "tempPassword123!"

// AdminService handles user administration and bulk alumni import
type AdminService struct {
	userRepo       repositories.UserRepository
	mentorshipRepo repositories.MentorshipRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repositories.UserRepository, mentorshipRepo repositories.MentorshipRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		mentorshipRepo: mentorshipRepo,
		logger:         logger,
	}
}

// ListUsers returns every user's public projection
func (s *AdminService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	return responses, nil
}

// DeleteUser removes a user record
func (s *AdminService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user", userID.Hex()).Msg("User deleted by admin")
	return nil
}

// ListMentorships returns every mentorship request with both sides populated
func (s *AdminService) ListMentorships(ctx context.Context) ([]*models.MentorshipRequest, error) {
	return s.mentorshipRepo.ListAll(ctx)
}

// BulkImportAlumni inserts each record as an unregistered placeholder.
// Records with an already-present email are recorded as failures; a failure
// on one record never aborts the batch.
func (s *AdminService) BulkImportAlumni(ctx context.Context, records []dto.BulkAlumniRecord) (*dto.BulkImportResult, error) {
	if len(records) == 0 {
		return nil, apperrors.NewValidationError("expected a non-empty array of alumni")
	}

	hashed, err := auth.HashPassword(placeholderPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing placeholder password: %w", err)
	}

	result := &dto.BulkImportResult{Errors: []string{}}

	for _, record := range records {
		email := strings.ToLower(strings.TrimSpace(record.Email))

		// Records arrive as a raw array, so binding tags never ran on them
		if reason := validateAlumniRecord(&record, email); reason != "" {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %s: %s", email, reason))
			continue
		}

		exists, err := s.userRepo.EmailExists(ctx, email)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %s: %v", email, err))
			continue
		}
		if exists {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Email %s already exists", email))
			continue
		}

		user := &models.User{
			FirstName:      record.FirstName,
			LastName:       record.LastName,
			Email:          email,
			Password:       hashed,
			Role:           models.RoleAlumni,
			IsRegistered:   false,
			Department:     record.Department,
			GraduationYear: record.GraduationYear,
			CurrentCompany: record.CurrentCompany,
			CurrentRole:    record.CurrentRole,
			Location:       record.Location,
			Skills:         record.Skills,
			CreatedAt:      time.Now(),
		}

		if _, err := s.userRepo.Create(ctx, user); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %s: %v", email, err))
			continue
		}
		result.Success++
	}

	s.logger.Info().
		Int("success", result.Success).
		Int("failed", result.Failed).
		Msg("Bulk alumni import completed")
	return result, nil
}

// validateAlumniRecord checks one import record against the field rules.
// Returns an empty string when the record is acceptable.
func validateAlumniRecord(record *dto.BulkAlumniRecord, email string) string {
	if !validation.ValidName(record.FirstName) {
		return "firstName is required"
	}
	if email == "" || !validation.IsValidEmail(email) {
		return "invalid email address"
	}
	if !validation.ValidGraduationYear(record.GraduationYear) {
		return "implausible graduation year"
	}
	return ""
}
