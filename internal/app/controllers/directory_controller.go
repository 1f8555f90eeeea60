package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/services"
	"github.com/deniz/alumlink/internal/middleware"
)

// DirectoryController serves the alumni directory
type DirectoryController struct {
	directoryService *services.DirectoryService
	logger           zerolog.Logger
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService, logger zerolog.Logger) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
		logger:           logger,
	}
}

// ListAlumni lists all alumni profiles
// @Summary List alumni directory
// @Description Returns all alumni accounts, claimed profiles first
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Alumni directory"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /alumni [get]
func (c *DirectoryController) ListAlumni(ctx *gin.Context) {
	alumni, err := c.directoryService.ListAlumni(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list alumni")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(alumni))
}
