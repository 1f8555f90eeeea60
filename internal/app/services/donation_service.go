package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
)

// DonationService handles donation records and the campaign total.
// There is no payment gateway; donations are recorded as completed
// synchronously with a generated transaction id.
type DonationService struct {
	donationRepo repositories.DonationRepository
}

// NewDonationService creates a new DonationService
func NewDonationService(donationRepo repositories.DonationRepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
	}
}

// Create records a completed donation for the caller
func (s *DonationService) Create(ctx context.Context, donorID primitive.ObjectID, req *dto.CreateDonationRequest) (*models.Donation, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	donation := &models.Donation{
		Donor:         donorID,
		Amount:        req.Amount,
		Currency:      currency,
		Campaign:      req.Campaign,
		Message:       req.Message,
		Status:        models.DonationCompleted,
		TransactionID: fmt.Sprintf("TXN-%d", time.Now().UnixMilli()),
		CreatedAt:     time.Now(),
	}

	id, err := s.donationRepo.Create(ctx, donation)
	if err != nil {
		return nil, err
	}
	donation.ID = id
	return donation, nil
}

// ListAll returns every donation with the donor populated, newest first
func (s *DonationService) ListAll(ctx context.Context) ([]*models.Donation, error) {
	return s.donationRepo.ListAll(ctx)
}

// ListMine returns the caller's donations, newest first
func (s *DonationService) ListMine(ctx context.Context, donorID primitive.ObjectID) ([]*models.Donation, error) {
	return s.donationRepo.ListByDonor(ctx, donorID)
}

// Total returns the aggregate sum over completed donations
func (s *DonationService) Total(ctx context.Context) (float64, error) {
	return s.donationRepo.TotalCompleted(ctx)
}
