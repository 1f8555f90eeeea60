package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
)

const notificationsCollection = "notifications"

// NotificationMongoRepository implements NotificationRepository on MongoDB
type NotificationMongoRepository struct {
	collection *mongo.Collection
}

// NewNotificationMongoRepository creates a new NotificationMongoRepository
func NewNotificationMongoRepository(db *mongo.Database) *NotificationMongoRepository {
	return &NotificationMongoRepository{
		collection: db.Collection(notificationsCollection),
	}
}

// Create inserts a new notification document
func (r *NotificationMongoRepository) Create(ctx context.Context, notification *models.Notification) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert notification: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetByID fetches a notification by id
func (r *NotificationMongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return &notification, nil
}

// ListByRecipient returns the recipient's most recent notifications
func (r *NotificationMongoRepository) ListByRecipient(ctx context.Context, recipient primitive.ObjectID, limit int64) ([]*models.Notification, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"recipient": recipient}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []*models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag on a notification
func (r *NotificationMongoRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}
