package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/services"
	"github.com/deniz/alumlink/internal/middleware"
)

// AdminController handles administrative operations
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers lists every account in the system
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "All users"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(users))
}

// DeleteUser removes an account
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse "User deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), userID); err != nil {
		c.logger.Warn().Err(err).Str("userID", userID.Hex()).Msg("Failed to delete user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userID", userID.Hex()).Msg("User deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted successfully"))
}

// ListMentorships lists every mentorship request in the system
// @Summary List all mentorship requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "All mentorship requests"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/mentorships [get]
func (c *AdminController) ListMentorships(ctx *gin.Context) {
	mentorships, err := c.adminService.ListMentorships(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mentorships))
}

// BulkImportAlumni imports alumni placeholder records in bulk
// @Summary Bulk import alumni
// @Description Validates each record against an explicit schema and inserts unclaimed placeholder accounts. A failing record never aborts the batch.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.BulkAlumniRecord true "Alumni records"
// @Success 200 {object} dto.APIResponse{data=dto.BulkImportResult} "Per-record import outcome"
// @Failure 400 {object} dto.ErrorResponse "Empty or malformed record array"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/alumni/bulk [post]
func (c *AdminController) BulkImportAlumni(ctx *gin.Context) {
	var records []dto.BulkAlumniRecord
	if err := ctx.ShouldBindJSON(&records); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.adminService.BulkImportAlumni(ctx.Request.Context(), records)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Bulk alumni import failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int("success", result.Success).
		Int("failed", result.Failed).
		Msg("Bulk alumni import completed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}
