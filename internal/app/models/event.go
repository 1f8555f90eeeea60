package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event defines an event posting with an append-only attendee list
type Event struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Date        time.Time            `json:"date" bson:"date"`
	Location    string               `json:"location" bson:"location"`
	Type        string               `json:"type,omitempty" bson:"type,omitempty" example:"webinar"`
	Organizer   primitive.ObjectID   `json:"organizer" bson:"organizer"`
	Attendees   []primitive.ObjectID `json:"attendees" bson:"attendees"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`

	OrganizerInfo *UserRef `json:"organizerInfo,omitempty" bson:"organizerInfo,omitempty"`
}
