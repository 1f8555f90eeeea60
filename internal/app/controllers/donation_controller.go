package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/services"
	"github.com/deniz/alumlink/internal/middleware"
)

// DonationController handles donations and donation aggregates
type DonationController struct {
	donationService *services.DonationService
	logger          zerolog.Logger
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService *services.DonationService, logger zerolog.Logger) *DonationController {
	return &DonationController{
		donationService: donationService,
		logger:          logger,
	}
}

// Create records a new donation
// @Summary Make a donation
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.APIResponse{data=models.Donation} "Donation recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or non-positive amount"
// @Router /donations [post]
func (c *DonationController) Create(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	donation, err := c.donationService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("donor", userID.Hex()).Msg("Failed to record donation")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Float64("amount", req.Amount).
		Str("campaign", req.Campaign).
		Str("donor", userID.Hex()).
		Msg("Donation recorded")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(donation))
}

// List lists all donations, newest first
// @Summary List donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DonationListResponse} "Donations"
// @Router /donations [get]
func (c *DonationController) List(ctx *gin.Context) {
	donations, err := c.donationService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DonationListResponse{
		Count: len(donations),
		Data:  donations,
	}))
}

// ListMine lists the authenticated user's donations
// @Summary List my donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DonationListResponse} "My donations"
// @Router /donations/my-donations [get]
func (c *DonationController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	donations, err := c.donationService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DonationListResponse{
		Count: len(donations),
		Data:  donations,
	}))
}

// Total returns the aggregate sum over completed donations
// @Summary Total donations
// @Tags donations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DonationTotalResponse} "Aggregate total"
// @Router /donations/total [get]
func (c *DonationController) Total(ctx *gin.Context) {
	total, err := c.donationService.Total(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DonationTotalResponse{TotalAmount: total}))
}
