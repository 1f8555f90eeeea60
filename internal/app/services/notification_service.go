package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/repositories"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
)

// recentNotificationLimit caps the notification feed
const recentNotificationLimit = 20

// NotificationService handles per-user notifications
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// ListMine returns the caller's most recent notifications
func (s *NotificationService) ListMine(ctx context.Context, userID primitive.ObjectID) ([]*models.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, userID, recentNotificationLimit)
}

// MarkRead flips the read flag; only the recipient may do so
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID primitive.ObjectID) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.Recipient != userID {
		return nil, apperrors.NewForbiddenError("not authorized to read this notification")
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}

	notification.Read = true
	return notification, nil
}
