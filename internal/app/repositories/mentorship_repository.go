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

const mentorshipCollection = "mentorship_requests"

// MentorshipMongoRepository implements MentorshipRepository on MongoDB
type MentorshipMongoRepository struct {
	collection *mongo.Collection
}

// NewMentorshipMongoRepository creates a new MentorshipMongoRepository
func NewMentorshipMongoRepository(db *mongo.Database) *MentorshipMongoRepository {
	return &MentorshipMongoRepository{
		collection: db.Collection(mentorshipCollection),
	}
}

// Create inserts a new mentorship request document
func (r *MentorshipMongoRepository) Create(ctx context.Context, request *models.MentorshipRequest) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert mentorship request: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetByID fetches a mentorship request by id
func (r *MentorshipMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get mentorship request: %w", err)
	}
	return &request, nil
}

// RespondIfPending performs a compare-and-swap on the status field: the update
// only matches while the request is still pending and owned by the alumni, so
// a terminal request can never transition again.
func (r *MentorshipMongoRepository) RespondIfPending(ctx context.Context, id, alumniID primitive.ObjectID, status models.MentorshipStatus) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"alumni": alumniID,
		"status": models.MentorshipPending,
	}

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, fmt.Errorf("failed to respond to mentorship request: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// lookupUserStage joins a slim user projection under the given field
func lookupUserStage(localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: usersCollection},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "firstName", Value: 1},
				{Key: "lastName", Value: 1},
				{Key: "email", Value: 1},
			}}},
		}},
	}}}
}

// unwindStage flattens a single-element lookup result, dropping nothing when
// the referenced user no longer exists
func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

func (r *MentorshipMongoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*models.MentorshipRequest, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate mentorship requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.MentorshipRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode mentorship requests: %w", err)
	}
	return requests, nil
}

// ListByAlumni returns requests targeting the alumni, optionally filtered by
// status, newest first, with the student projection populated.
func (r *MentorshipMongoRepository) ListByAlumni(ctx context.Context, alumniID primitive.ObjectID, status *models.MentorshipStatus) ([]*models.MentorshipRequest, error) {
	match := bson.M{"alumni": alumniID}
	if status != nil {
		match["status"] = *status
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		lookupUserStage("student", "studentInfo"),
		unwindStage("studentInfo"),
	}
	return r.aggregate(ctx, pipeline)
}

// ListByStudent returns the student's own requests, newest first, with the
// alumni projection populated.
func (r *MentorshipMongoRepository) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*models.MentorshipRequest, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"student": studentID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		lookupUserStage("alumni", "alumniInfo"),
		unwindStage("alumniInfo"),
	}
	return r.aggregate(ctx, pipeline)
}

// ListAll returns every request with both sides populated, newest first
func (r *MentorshipMongoRepository) ListAll(ctx context.Context) ([]*models.MentorshipRequest, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		lookupUserStage("student", "studentInfo"),
		unwindStage("studentInfo"),
		lookupUserStage("alumni", "alumniInfo"),
		unwindStage("alumniInfo"),
	}
	return r.aggregate(ctx, pipeline)
}
