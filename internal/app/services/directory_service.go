package services

import (
	"context"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
)

// DirectoryService lists the alumni directory, seeded placeholders included.
// Filtering over name/company/role happens client-side.
type DirectoryService struct {
	userRepo repositories.UserRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(userRepo repositories.UserRepository) *DirectoryService {
	return &DirectoryService{
		userRepo: userRepo,
	}
}

// ListAlumni returns all alumni records sorted registered-first then by first
// name, projected without sensitive fields.
func (s *DirectoryService) ListAlumni(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	alumni := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		alumni = append(alumni, dto.NewUserResponse(user))
	}
	return alumni, nil
}
