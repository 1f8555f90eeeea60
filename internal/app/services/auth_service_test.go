package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
	"github.com/deniz/alumlink/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    24 * time.Hour,
		TokenIssuer: "alumlink.test",
	})
}

func TestRegister_NewUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, apperrors.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ada@example.com" && u.Role == models.RoleStudent && u.IsRegistered
	})).Return(primitive.NewObjectID(), nil)

	message, err := service.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Password:  "secret123",
		Role:      models.RoleStudent,
	})

	assert.NoError(t, err)
	assert.Equal(t, "User registered successfully", message)
	userRepo.AssertExpectations(t)
}

func TestRegister_ClaimsAlumniPlaceholder(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	placeholderID := primitive.NewObjectID()
	userRepo.On("GetByEmail", mock.Anything, "john.doe@example.com").Return(&models.User{
		ID:           placeholderID,
		FirstName:    "John",
		Email:        "john.doe@example.com",
		Role:         models.RoleAlumni,
		IsRegistered: false,
	}, nil)
	userRepo.On("UpdateFields", mock.Anything, placeholderID, mock.MatchedBy(func(fields bson.M) bool {
		return fields["isRegistered"] == true && fields["firstName"] == "Johnny"
	})).Return(nil)

	message, err := service.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Johnny",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "secret123",
		Role:      models.RoleAlumni,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alumni account claimed and registered successfully", message)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	// A claimed alumni account is not claimable again
	userRepo.On("GetByEmail", mock.Anything, "john.doe@example.com").Return(&models.User{
		ID:           primitive.NewObjectID(),
		Email:        "john.doe@example.com",
		Role:         models.RoleAlumni,
		IsRegistered: true,
	}, nil)

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Imposter",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Password:  "secret123",
		Role:      models.RoleAlumni,
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	hashed, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&models.User{
		ID:           primitive.NewObjectID(),
		Email:        "ada@example.com",
		Password:     hashed,
		Role:         models.RoleStudent,
		IsRegistered: true,
	}, nil)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(86400), response.ExpiresIn)
	assert.Equal(t, "ada@example.com", response.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	hashed, err := auth.HashPassword("secret123")
	assert.NoError(t, err)

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&models.User{
		Email:        "ada@example.com",
		Password:     hashed,
		Role:         models.RoleStudent,
		IsRegistered: true,
	}, nil)

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnclaimedAlumniRejectedBeforePasswordCheck(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	userRepo.On("GetByEmail", mock.Anything, "john.doe@example.com").Return(&models.User{
		Email:        "john.doe@example.com",
		Password:     "placeholder-hash",
		Role:         models.RoleAlumni,
		IsRegistered: false,
	}, nil)

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "john.doe@example.com",
		Password: "anything",
	})

	assert.ErrorIs(t, err, apperrors.ErrAccountNotClaimed)
}

func TestUpdateProfile_RejectsDisallowedField(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	_, err := service.UpdateProfile(context.Background(), primitive.NewObjectID(), map[string]interface{}{
		"bio":  "hello",
		"role": "admin",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_DeletesReplacedProfilePicture(t *testing.T) {
	userRepo := new(MockUserRepository)
	storage := new(MockFileStorage)
	service := NewAuthService(userRepo, newTestJWTService(), storage, zerolog.Nop())

	userID := primitive.NewObjectID()
	oldPicture := "http://localhost:8080/uploads/old-picture.png"
	newPicture := "http://localhost:8080/uploads/new-picture.png"

	userRepo.On("GetByID", mock.Anything, userID).Return(&models.User{
		ID:             userID,
		Email:          "ada@example.com",
		ProfilePicture: oldPicture,
	}, nil).Once()
	userRepo.On("UpdateFields", mock.Anything, userID, bson.M{"profilePicture": newPicture}).Return(nil)
	storage.On("DeleteFile", oldPicture).Return(nil)
	userRepo.On("GetByID", mock.Anything, userID).Return(&models.User{
		ID:             userID,
		Email:          "ada@example.com",
		ProfilePicture: newPicture,
	}, nil)

	profile, err := service.UpdateProfile(context.Background(), userID, map[string]interface{}{
		"profilePicture": newPicture,
	})

	assert.NoError(t, err)
	assert.Equal(t, newPicture, profile.ProfilePicture)
	storage.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestUpdateProfile_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestJWTService(), nil, zerolog.Nop())

	userID := primitive.NewObjectID()
	userRepo.On("UpdateFields", mock.Anything, userID, bson.M{
		"bio":    "Hi there",
		"skills": []interface{}{"go", "mongodb"},
	}).Return(nil)
	userRepo.On("GetByID", mock.Anything, userID).Return(&models.User{
		ID:    userID,
		Email: "ada@example.com",
		Bio:   "Hi there",
	}, nil)

	profile, err := service.UpdateProfile(context.Background(), userID, map[string]interface{}{
		"bio":    "Hi there",
		"skills": []interface{}{"go", "mongodb"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Hi there", profile.Bio)
	userRepo.AssertExpectations(t)
}
