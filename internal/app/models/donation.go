package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation defines a donation record. There is no payment gateway; records
// are written with status completed and a generated transaction id.
type Donation struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Donor         primitive.ObjectID `json:"donor" bson:"donor"`
	Amount        float64            `json:"amount" bson:"amount"` // Must be > 0
	Currency      string             `json:"currency" bson:"currency" example:"USD"`
	Campaign      string             `json:"campaign" bson:"campaign"`
	Message       string             `json:"message,omitempty" bson:"message,omitempty"`
	Status        DonationStatus     `json:"status" bson:"status"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`

	DonorInfo *UserRef `json:"donorInfo,omitempty" bson:"donorInfo,omitempty"`
}
