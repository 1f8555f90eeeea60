package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deniz/alumlink/internal/app/models"
)

const jobsCollection = "jobs"

// JobMongoRepository implements JobRepository on MongoDB
type JobMongoRepository struct {
	collection *mongo.Collection
}

// NewJobMongoRepository creates a new JobMongoRepository
func NewJobMongoRepository(db *mongo.Database) *JobMongoRepository {
	return &JobMongoRepository{
		collection: db.Collection(jobsCollection),
	}
}

// Create inserts a new job posting
func (r *JobMongoRepository) Create(ctx context.Context, job *models.Job) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert job: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// ListAll returns every job posting, newest first, with the poster populated
func (r *JobMongoRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		lookupUserStage("poster", "posterInfo"),
		unwindStage("posterInfo"),
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []*models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}
