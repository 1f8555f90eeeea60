package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
)

const eventsCollection = "events"

// EventMongoRepository implements EventRepository on MongoDB
type EventMongoRepository struct {
	collection *mongo.Collection
}

// NewEventMongoRepository creates a new EventMongoRepository
func NewEventMongoRepository(db *mongo.Database) *EventMongoRepository {
	return &EventMongoRepository{
		collection: db.Collection(eventsCollection),
	}
}

// Create inserts a new event posting
func (r *EventMongoRepository) Create(ctx context.Context, event *models.Event) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert event: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetByID fetches an event by id
func (r *EventMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// ListAll returns every event, soonest first, with the organizer populated
func (r *EventMongoRepository) ListAll(ctx context.Context) ([]*models.Event, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}}}},
		lookupUserStage("organizer", "organizerInfo"),
		unwindStage("organizerInfo"),
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// AddAttendee appends the user to the attendee list. The filter excludes
// documents that already contain the user, so a duplicate RSVP matches nothing.
func (r *EventMongoRepository) AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":       eventID,
		"attendees": bson.M{"$ne": userID},
	}

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$addToSet": bson.M{"attendees": userID}})
	if err != nil {
		return false, fmt.Errorf("failed to add attendee: %w", err)
	}
	return res.MatchedCount > 0, nil
}
