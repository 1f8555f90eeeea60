package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorshipRequest defines a student's mentorship request to an alumni.
// Status starts at pending and moves exactly once to accepted or rejected.
type MentorshipRequest struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Student   primitive.ObjectID `json:"student" bson:"student"`
	Alumni    primitive.ObjectID `json:"alumni" bson:"alumni"`
	Message   string             `json:"message" bson:"message"`
	Status    MentorshipStatus   `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`

	// Populated projections, filled by list queries only
	StudentInfo *UserRef `json:"studentInfo,omitempty" bson:"studentInfo,omitempty"`
	AlumniInfo  *UserRef `json:"alumniInfo,omitempty" bson:"alumniInfo,omitempty"`
}
