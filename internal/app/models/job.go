package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job defines a job or internship posting
type Job struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Company         string             `json:"company" bson:"company"`
	Location        string             `json:"location" bson:"location"`
	Description     string             `json:"description" bson:"description"`
	Requirements    string             `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Poster          primitive.ObjectID `json:"poster" bson:"poster"`
	Type            JobType            `json:"type" bson:"type"`
	ApplicationLink string             `json:"applicationLink,omitempty" bson:"applicationLink,omitempty"`
	ContactEmail    string             `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`

	PosterInfo *UserRef `json:"posterInfo,omitempty" bson:"posterInfo,omitempty"`
}
