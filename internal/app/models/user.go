package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines the user document stored in the 'users' collection
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName" example:"John"`
	LastName  string             `json:"lastName" bson:"lastName" example:"Doe"`
	Email     string             `json:"email" bson:"email" example:"john.doe@example.com"` // Unique, stored lowercase
	Password  string             `json:"-" bson:"password"`                                 // Hashed password (excluded from JSON)
	Role      Role               `json:"role" bson:"role" example:"alumni"`

	// A seeded alumni placeholder has isRegistered=false until the owner
	// claims it through registration.
	IsRegistered bool `json:"isRegistered" bson:"isRegistered"`

	Department string `json:"department,omitempty" bson:"department,omitempty"`

	// Education details
	GraduationYear int    `json:"graduationYear,omitempty" bson:"graduationYear,omitempty" example:"2019"`
	Degree         string `json:"degree,omitempty" bson:"degree,omitempty"`
	Major          string `json:"major,omitempty" bson:"major,omitempty"`

	// Professional details (mostly for alumni)
	CurrentCompany  string   `json:"currentCompany,omitempty" bson:"currentCompany,omitempty"`
	CurrentRole     string   `json:"currentRole,omitempty" bson:"currentRole,omitempty"`
	Skills          []string `json:"skills,omitempty" bson:"skills,omitempty"`
	Bio             string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Location        string   `json:"location,omitempty" bson:"location,omitempty"`
	LinkedinProfile string   `json:"linkedinProfile,omitempty" bson:"linkedinProfile,omitempty"`
	ProfilePicture  string   `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// UserRef is the slim projection embedded when another document's owner is populated
type UserRef struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
}
