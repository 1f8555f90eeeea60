package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
	"github.com/deniz/alumlink/internal/pkg/recommender"
)

func TestCreateRequest_Success(t *testing.T) {
	mentorshipRepo := new(MockMentorshipRepository)
	userRepo := new(MockUserRepository)
	service := NewMentorshipService(mentorshipRepo, userRepo, nil, zerolog.Nop())

	studentID := primitive.NewObjectID()
	alumniID := primitive.NewObjectID()

	userRepo.On("GetByID", mock.Anything, alumniID).Return(&models.User{
		ID:   alumniID,
		Role: models.RoleAlumni,
	}, nil)
	mentorshipRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.MentorshipRequest) bool {
		return r.Student == studentID && r.Alumni == alumniID && r.Status == models.MentorshipPending
	})).Return(primitive.NewObjectID(), nil)

	request, err := service.CreateRequest(context.Background(), studentID, &dto.CreateMentorshipRequest{
		Alumni:  alumniID.Hex(),
		Message: "Looking for guidance on backend careers",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.MentorshipPending, request.Status)
	assert.False(t, request.ID.IsZero())
	mentorshipRepo.AssertExpectations(t)
}

func TestCreateRequest_TargetNotAlumni(t *testing.T) {
	mentorshipRepo := new(MockMentorshipRepository)
	userRepo := new(MockUserRepository)
	service := NewMentorshipService(mentorshipRepo, userRepo, nil, zerolog.Nop())

	targetID := primitive.NewObjectID()
	userRepo.On("GetByID", mock.Anything, targetID).Return(&models.User{
		ID:   targetID,
		Role: models.RoleStudent,
	}, nil)

	_, err := service.CreateRequest(context.Background(), primitive.NewObjectID(), &dto.CreateMentorshipRequest{
		Alumni:  targetID.Hex(),
		Message: "hello",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	mentorshipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequest_InvalidAlumniID(t *testing.T) {
	service := NewMentorshipService(new(MockMentorshipRepository), new(MockUserRepository), nil, zerolog.Nop())

	_, err := service.CreateRequest(context.Background(), primitive.NewObjectID(), &dto.CreateMentorshipRequest{
		Alumni:  "not-an-object-id",
		Message: "hello",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRespond_Accept(t *testing.T) {
	mentorshipRepo := new(MockMentorshipRepository)
	service := NewMentorshipService(mentorshipRepo, new(MockUserRepository), nil, zerolog.Nop())

	requestID := primitive.NewObjectID()
	alumniID := primitive.NewObjectID()

	mentorshipRepo.On("RespondIfPending", mock.Anything, requestID, alumniID, models.MentorshipAccepted).Return(true, nil)
	mentorshipRepo.On("GetByID", mock.Anything, requestID).Return(&models.MentorshipRequest{
		ID:     requestID,
		Alumni: alumniID,
		Status: models.MentorshipAccepted,
	}, nil)

	request, err := service.Respond(context.Background(), requestID, alumniID, "accepted")

	assert.NoError(t, err)
	assert.Equal(t, models.MentorshipAccepted, request.Status)
}

func TestRespond_AlreadyResponded(t *testing.T) {
	mentorshipRepo := new(MockMentorshipRepository)
	service := NewMentorshipService(mentorshipRepo, new(MockUserRepository), nil, zerolog.Nop())

	requestID := primitive.NewObjectID()
	alumniID := primitive.NewObjectID()

	// Precondition fails because the request already left pending
	mentorshipRepo.On("RespondIfPending", mock.Anything, requestID, alumniID, models.MentorshipRejected).Return(false, nil)
	mentorshipRepo.On("GetByID", mock.Anything, requestID).Return(&models.MentorshipRequest{
		ID:     requestID,
		Alumni: alumniID,
		Status: models.MentorshipAccepted,
	}, nil)

	_, err := service.Respond(context.Background(), requestID, alumniID, "rejected")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRespond_NotAddressedAlumni(t *testing.T) {
	mentorshipRepo := new(MockMentorshipRepository)
	service := NewMentorshipService(mentorshipRepo, new(MockUserRepository), nil, zerolog.Nop())

	requestID := primitive.NewObjectID()
	responderID := primitive.NewObjectID()

	mentorshipRepo.On("RespondIfPending", mock.Anything, requestID, responderID, models.MentorshipAccepted).Return(false, nil)
	mentorshipRepo.On("GetByID", mock.Anything, requestID).Return(&models.MentorshipRequest{
		ID:     requestID,
		Alumni: primitive.NewObjectID(),
		Status: models.MentorshipPending,
	}, nil)

	_, err := service.Respond(context.Background(), requestID, responderID, "accepted")

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestRespond_NotFound(t *testing.T) {
	mentorshipRepo := new(MockMentorshipRepository)
	service := NewMentorshipService(mentorshipRepo, new(MockUserRepository), nil, zerolog.Nop())

	requestID := primitive.NewObjectID()
	alumniID := primitive.NewObjectID()

	mentorshipRepo.On("RespondIfPending", mock.Anything, requestID, alumniID, models.MentorshipAccepted).Return(false, nil)
	mentorshipRepo.On("GetByID", mock.Anything, requestID).Return(nil, apperrors.ErrRequestNotFound)

	_, err := service.Respond(context.Background(), requestID, alumniID, "accepted")

	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestRespond_InvalidStatus(t *testing.T) {
	service := NewMentorshipService(new(MockMentorshipRepository), new(MockUserRepository), nil, zerolog.Nop())

	_, err := service.Respond(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "maybe")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func recommendTestUsers(studentID primitive.ObjectID) (*models.User, []*models.User) {
	student := &models.User{
		ID:     studentID,
		Role:   models.RoleStudent,
		Skills: []string{"go", "mongodb"},
	}
	alumni := []*models.User{
		{ID: primitive.NewObjectID(), FirstName: "John", Email: "john.doe@example.com", Role: models.RoleAlumni, Skills: []string{"go"}},
		{ID: primitive.NewObjectID(), FirstName: "Jane", Email: "jane.smith@example.com", Role: models.RoleAlumni, Skills: []string{"python"}},
	}
	return student, alumni
}

func TestRecommendMentors_RankedByService(t *testing.T) {
	studentID := primitive.NewObjectID()
	student, alumni := recommendTestUsers(studentID)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"count": 1,
			"data": [
				{"_id": "` + alumni[0].ID.Hex() + `", "firstName": "John", "match_score": 0.92}
			]
		}`))
	}))
	defer server.Close()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, studentID).Return(student, nil)
	userRepo.On("ListByRole", mock.Anything, models.RoleAlumni).Return(alumni, nil)

	client := recommender.NewClient(recommender.Config{BaseURL: server.URL}, zerolog.Nop())
	service := NewMentorshipService(new(MockMentorshipRepository), userRepo, client, zerolog.Nop())

	recommendations, err := service.RecommendMentors(context.Background(), studentID)

	assert.NoError(t, err)
	assert.Len(t, recommendations, 1)
	assert.Equal(t, 0.92, recommendations[0].MatchScore)
	assert.False(t, recommendations[0].Fallback)
}

func TestRecommendMentors_FallbackWhenServiceDown(t *testing.T) {
	studentID := primitive.NewObjectID()
	student, alumni := recommendTestUsers(studentID)

	// Point the client at a server that is no longer listening
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, studentID).Return(student, nil)
	userRepo.On("ListByRole", mock.Anything, models.RoleAlumni).Return(alumni, nil)

	client := recommender.NewClient(recommender.Config{BaseURL: server.URL}, zerolog.Nop())
	service := NewMentorshipService(new(MockMentorshipRepository), userRepo, client, zerolog.Nop())

	recommendations, err := service.RecommendMentors(context.Background(), studentID)

	// The full roster comes back unscored instead of an error
	assert.NoError(t, err)
	assert.Len(t, recommendations, 2)
	for _, rec := range recommendations {
		assert.True(t, rec.Fallback)
		assert.Zero(t, rec.MatchScore)
	}
}
