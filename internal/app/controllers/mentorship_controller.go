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

// MentorshipController handles the mentorship request workflow
type MentorshipController struct {
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// CreateRequest handles a student's mentorship request
// @Summary Request mentorship
// @Description Creates a pending mentorship request addressed to an alumni
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipRequest true "Mentorship request"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipRequest} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or target is not an alumni"
// @Failure 403 {object} dto.ErrorResponse "Only students can request mentorship"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Router /mentorship/request [post]
func (c *MentorshipController) CreateRequest(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.mentorshipService.CreateRequest(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("student", userID.Hex()).Msg("Failed to create mentorship request")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(request))
}

// ListIncoming lists requests addressed to the authenticated alumni
// @Summary List incoming mentorship requests
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Incoming requests"
// @Failure 403 {object} dto.ErrorResponse "Only alumni can view incoming requests"
// @Router /mentorship/requests [get]
func (c *MentorshipController) ListIncoming(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	requests, err := c.mentorshipService.ListForAlumni(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// ListMine lists the authenticated student's own requests
// @Summary List my mentorship requests
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "My requests"
// @Failure 403 {object} dto.ErrorResponse "Only students can view their requests"
// @Router /mentorship/my-requests [get]
func (c *MentorshipController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	requests, err := c.mentorshipService.ListForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// ListMentees lists the authenticated alumni's accepted requests
// @Summary List my mentees
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Accepted requests"
// @Failure 403 {object} dto.ErrorResponse "Only alumni can view their mentees"
// @Router /mentorship/my-mentees [get]
func (c *MentorshipController) ListMentees(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	requests, err := c.mentorshipService.ListAcceptedForAlumni(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requests))
}

// Respond handles accepting or rejecting a pending request
// @Summary Respond to a mentorship request
// @Description Accepts or rejects a pending request. Requests that already left the pending state cannot be responded to again.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body dto.RespondMentorshipRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipRequest} "Updated request"
// @Failure 400 {object} dto.ErrorResponse "Invalid status or request already responded"
// @Failure 403 {object} dto.ErrorResponse "Not the addressed alumni"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /mentorship/respond/{id} [put]
func (c *MentorshipController) Respond(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	requestID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RespondMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.mentorshipService.Respond(ctx.Request.Context(), requestID, userID, req.Status)
	if err != nil {
		c.logger.Warn().Err(err).Str("request", requestID.Hex()).Msg("Failed to respond to mentorship request")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// Recommendations returns ranked mentor recommendations for the student
// @Summary Recommend mentors
// @Description Returns the alumni roster ranked by the recommendation service. Falls back to the unscored roster when the service is unavailable.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorRecommendation} "Recommended mentors"
// @Failure 403 {object} dto.ErrorResponse "Only students can request recommendations"
// @Router /mentorship/recommendations [get]
func (c *MentorshipController) Recommendations(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	recommendations, err := c.mentorshipService.RecommendMentors(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(recommendations))
}
