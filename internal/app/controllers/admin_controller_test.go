package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/services"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}
func (m *MockUserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *MockUserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMentorshipRepository struct{ mock.Mock }

func (m *MockMentorshipRepository) Create(ctx context.Context, request *models.MentorshipRequest) (primitive.ObjectID, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockMentorshipRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorshipRequest), args.Error(1)
}
func (m *MockMentorshipRepository) RespondIfPending(ctx context.Context, id, alumniID primitive.ObjectID, status models.MentorshipStatus) (bool, error) {
	args := m.Called(ctx, id, alumniID, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockMentorshipRepository) ListByAlumni(ctx context.Context, alumniID primitive.ObjectID, status *models.MentorshipStatus) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx, alumniID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}
func (m *MockMentorshipRepository) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}
func (m *MockMentorshipRepository) ListAll(ctx context.Context) ([]*models.MentorshipRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MentorshipRequest), args.Error(1)
}

// A batch mixing valid and malformed records must reach the service and come
// back as a 200 with per-record outcomes. The request must not be rejected
// wholesale at binding time because one email is malformed.
func TestBulkImportAlumni_MalformedRecordDoesNotRejectBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userRepo := new(MockUserRepository)
	mentorshipRepo := new(MockMentorshipRepository)
	userRepo.On("EmailExists", mock.Anything, "good@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)

	adminService := services.NewAdminService(userRepo, mentorshipRepo, zerolog.Nop())
	controller := NewAdminController(adminService, zerolog.Nop())

	body := `[
		{"firstName": "Good", "lastName": "Record", "email": "good@example.com", "graduationYear": 2018},
		{"firstName": "Bad", "lastName": "Record", "email": "not-an-email", "graduationYear": 2019}
	]`

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/admin/alumni/bulk", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	controller.BulkImportAlumni(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool                 `json:"success"`
		Data    dto.BulkImportResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Data.Success)
	assert.Equal(t, 1, response.Data.Failed)
	assert.Len(t, response.Data.Errors, 1)
	assert.Contains(t, response.Data.Errors[0], "not-an-email")

	userRepo.AssertExpectations(t)
}
