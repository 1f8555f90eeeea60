package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deniz/alumlink/internal/app/models"
)

const donationsCollection = "donations"

// DonationMongoRepository implements DonationRepository on MongoDB
type DonationMongoRepository struct {
	collection *mongo.Collection
}

// NewDonationMongoRepository creates a new DonationMongoRepository
func NewDonationMongoRepository(db *mongo.Database) *DonationMongoRepository {
	return &DonationMongoRepository{
		collection: db.Collection(donationsCollection),
	}
}

// Create inserts a new donation record
func (r *DonationMongoRepository) Create(ctx context.Context, donation *models.Donation) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, donation)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert donation: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// ListAll returns every donation, newest first, with the donor populated
func (r *DonationMongoRepository) ListAll(ctx context.Context) ([]*models.Donation, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		lookupUserStage("donor", "donorInfo"),
		unwindStage("donorInfo"),
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer cursor.Close(ctx)

	var donations []*models.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, fmt.Errorf("failed to decode donations: %w", err)
	}
	return donations, nil
}

// ListByDonor returns the donor's donations, newest first
func (r *DonationMongoRepository) ListByDonor(ctx context.Context, donor primitive.ObjectID) ([]*models.Donation, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"donor": donor}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations by donor: %w", err)
	}
	defer cursor.Close(ctx)

	var donations []*models.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, fmt.Errorf("failed to decode donations: %w", err)
	}
	return donations, nil
}

// TotalCompleted sums amounts over completed donations only; pending and
// failed records never count toward the total.
func (r *DonationMongoRepository) TotalCompleted(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.DonationCompleted}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate donation total: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode donation total: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalAmount, nil
}
