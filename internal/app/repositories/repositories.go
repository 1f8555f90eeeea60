package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deniz/alumlink/internal/app/models"
)

// UserRepository provides access to the users collection
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MentorshipRepository provides access to the mentorship_requests collection
type MentorshipRepository interface {
	Create(ctx context.Context, request *models.MentorshipRequest) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MentorshipRequest, error)
	// RespondIfPending atomically sets the status only when the request still
	// belongs to the alumni and is pending. It reports whether a document matched.
	RespondIfPending(ctx context.Context, id, alumniID primitive.ObjectID, status models.MentorshipStatus) (bool, error)
	ListByAlumni(ctx context.Context, alumniID primitive.ObjectID, status *models.MentorshipStatus) ([]*models.MentorshipRequest, error)
	ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*models.MentorshipRequest, error)
	ListAll(ctx context.Context) ([]*models.MentorshipRequest, error)
}

// NotificationRepository provides access to the notifications collection
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)
	ListByRecipient(ctx context.Context, recipient primitive.ObjectID, limit int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

// JobRepository provides access to the jobs collection
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (primitive.ObjectID, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
}

// EventRepository provides access to the events collection
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	ListAll(ctx context.Context) ([]*models.Event, error)
	// AddAttendee appends the user to the attendee list only when not already
	// present. It reports whether a document matched the precondition.
	AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error)
}

// DonationRepository provides access to the donations collection
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) (primitive.ObjectID, error)
	ListAll(ctx context.Context) ([]*models.Donation, error)
	ListByDonor(ctx context.Context, donor primitive.ObjectID) ([]*models.Donation, error)
	TotalCompleted(ctx context.Context) (float64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         UserRepository
	MentorshipRepository   MentorshipRepository
	NotificationRepository NotificationRepository
	JobRepository          JobRepository
	EventRepository        EventRepository
	DonationRepository     DonationRepository
}

// NewRepositories initializes all repositories against a Mongo database handle
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:         NewUserMongoRepository(db),
		MentorshipRepository:   NewMentorshipMongoRepository(db),
		NotificationRepository: NewNotificationMongoRepository(db),
		JobRepository:          NewJobMongoRepository(db),
		EventRepository:        NewEventMongoRepository(db),
		DonationRepository:     NewDonationMongoRepository(db),
	}
}
