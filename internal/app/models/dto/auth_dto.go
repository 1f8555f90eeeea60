package dto

import (
	"time"

	"github.com/deniz/alumlink/internal/app/models"
)

// RegisterRequest represents a user registration (or placeholder claim) request
type RegisterRequest struct {
	FirstName  string      `json:"firstName" binding:"required"`
	LastName   string      `json:"lastName" binding:"required"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	Role       models.Role `json:"role" binding:"required,oneof=student alumni admin"`
	Department string      `json:"department"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public user projection (never carries the password hash)
type UserResponse struct {
	ID              string      `json:"id"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Email           string      `json:"email"`
	Role            models.Role `json:"role"`
	IsRegistered    bool        `json:"isRegistered"`
	Department      string      `json:"department,omitempty"`
	GraduationYear  int         `json:"graduationYear,omitempty"`
	Degree          string      `json:"degree,omitempty"`
	Major           string      `json:"major,omitempty"`
	CurrentCompany  string      `json:"currentCompany,omitempty"`
	CurrentRole     string      `json:"currentRole,omitempty"`
	Skills          []string    `json:"skills,omitempty"`
	Bio             string      `json:"bio,omitempty"`
	Location        string      `json:"location,omitempty"`
	LinkedinProfile string      `json:"linkedinProfile,omitempty"`
	ProfilePicture  string      `json:"profilePicture,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// NewUserResponse builds the public projection of a user document
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID.Hex(),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Role:            user.Role,
		IsRegistered:    user.IsRegistered,
		Department:      user.Department,
		GraduationYear:  user.GraduationYear,
		Degree:          user.Degree,
		Major:           user.Major,
		CurrentCompany:  user.CurrentCompany,
		CurrentRole:     user.CurrentRole,
		Skills:          user.Skills,
		Bio:             user.Bio,
		Location:        user.Location,
		LinkedinProfile: user.LinkedinProfile,
		ProfilePicture:  user.ProfilePicture,
		CreatedAt:       user.CreatedAt,
	}
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType" example:"Bearer"`
	ExpiresIn int64         `json:"expiresIn"`
	User      *UserResponse `json:"user"`
}
