package dto

import "time"

// CreateJobRequest represents a new job or internship posting
type CreateJobRequest struct {
	Title           string `json:"title" binding:"required"`
	Company         string `json:"company" binding:"required"`
	Location        string `json:"location" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Requirements    string `json:"requirements"`
	Type            string `json:"type" binding:"omitempty,oneof=job internship"`
	ApplicationLink string `json:"applicationLink"`
	ContactEmail    string `json:"contactEmail" binding:"omitempty,email"`
}

// CreateEventRequest represents a new event posting
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Type        string    `json:"type"`
}

// CreateDonationRequest represents a new donation
type CreateDonationRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Campaign string  `json:"campaign" binding:"required"`
	Currency string  `json:"currency"`
	Message  string  `json:"message"`
}

// DonationTotalResponse carries the aggregate sum over completed donations
type DonationTotalResponse struct {
	TotalAmount float64 `json:"totalAmount"`
}

// DonationListResponse carries donations plus a count, matching the dashboard widgets
type DonationListResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}
