package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification defines a server-generated message addressed to a single user
type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Recipient primitive.ObjectID `json:"recipient" bson:"recipient"`
	Type      NotificationType   `json:"type" bson:"type"`
	Message   string             `json:"message" bson:"message"`
	RelatedID primitive.ObjectID `json:"relatedId,omitempty" bson:"relatedId,omitempty"` // ID of the related entity, if any
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
