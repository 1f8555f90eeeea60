package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
	"github.com/deniz/alumlink/internal/pkg/auth"
	"github.com/deniz/alumlink/internal/pkg/filestorage"
)

// profileAllowedFields is the fixed allow-list for profile updates. Any
// submitted key outside this set rejects the whole update.
var profileAllowedFields = map[string]bool{
	"firstName":       true,
	"lastName":        true,
	"department":      true,
	"graduationYear":  true,
	"degree":          true,
	"major":           true,
	"currentCompany":  true,
	"currentRole":     true,
	"skills":          true,
	"bio":             true,
	"location":        true,
	"linkedinProfile": true,
	"profilePicture":  true,
}

// AuthService handles registration, the alumni claim flow, login and profiles
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService, storage filestorage.FileStorage, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		storage:    storage,
		logger:     logger,
	}
}

// Register creates a new account, or claims a seeded alumni placeholder when
// the email belongs to one. Registration never logs the user in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !apperrors.Is(err, apperrors.ErrUserNotFound) {
		return "", fmt.Errorf("error checking existing email: %w", err)
	}

	if existing != nil {
		// An unclaimed alumni placeholder is claimable exactly once;
		// any other existing record is a duplicate registration.
		if existing.Role != models.RoleAlumni || existing.IsRegistered {
			return "", apperrors.ErrEmailAlreadyExists
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return "", fmt.Errorf("error hashing password: %w", err)
		}

		fields := bson.M{
			"firstName":    req.FirstName,
			"lastName":     req.LastName,
			"password":     hashed,
			"isRegistered": true,
		}
		if req.Department != "" {
			fields["department"] = req.Department
		}

		if err := s.userRepo.UpdateFields(ctx, existing.ID, fields); err != nil {
			return "", fmt.Errorf("error claiming alumni account: %w", err)
		}

		s.logger.Info().Str("email", email).Msg("Alumni placeholder claimed")
		return "Alumni account claimed and registered successfully", nil
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Password:     hashed,
		Role:         req.Role,
		IsRegistered: true,
		Department:   req.Department,
		CreatedAt:    time.Now(),
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info().Str("email", email).Str("role", string(req.Role)).Msg("User registered")
	return "User registered successfully", nil
}

// Login authenticates credentials and issues a signed, time-limited token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	// An unclaimed alumni placeholder cannot log in regardless of password.
	if user.Role == models.RoleAlumni && !user.IsRegistered {
		return nil, apperrors.ErrAccountNotClaimed
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      dto.NewUserResponse(user),
	}, nil
}

// GetProfile returns the public projection of the user
func (s *AuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile merges the submitted fields into the user document. Keys
// outside the allow-list reject the whole update.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, updates map[string]interface{}) (*dto.UserResponse, error) {
	if len(updates) == 0 {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	fields := bson.M{}
	for key, value := range updates {
		if !profileAllowedFields[key] {
			return nil, apperrors.NewValidationError(fmt.Sprintf("field %q cannot be updated", key))
		}
		fields[key] = value
	}

	// A replaced profile picture leaves its old file orphaned on disk;
	// remember the current one so it can be removed after the update.
	var previousPicture string
	if newPicture, ok := fields["profilePicture"]; ok {
		current, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if current.ProfilePicture != "" && current.ProfilePicture != newPicture {
			previousPicture = current.ProfilePicture
		}
	}

	if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	if previousPicture != "" && s.storage != nil {
		if err := s.storage.DeleteFile(previousPicture); err != nil {
			s.logger.Warn().Err(err).Str("path", previousPicture).Msg("Failed to remove replaced profile picture")
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
