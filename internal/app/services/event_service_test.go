package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
)

func TestEventCreate_StampsOrganizer(t *testing.T) {
	eventRepo := new(MockEventRepository)
	service := NewEventService(eventRepo)

	organizerID := primitive.NewObjectID()
	eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.Organizer == organizerID && len(e.Attendees) == 0
	})).Return(primitive.NewObjectID(), nil)

	event, err := service.Create(context.Background(), organizerID, &dto.CreateEventRequest{
		Title:       "Alumni Meetup 2026",
		Description: "Annual networking meetup",
		Date:        time.Now().Add(30 * 24 * time.Hour),
		Location:    "Campus Hall A",
	})

	assert.NoError(t, err)
	assert.Equal(t, organizerID, event.Organizer)
	assert.False(t, event.ID.IsZero())
}

func TestRSVP_Success(t *testing.T) {
	eventRepo := new(MockEventRepository)
	service := NewEventService(eventRepo)

	eventID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	eventRepo.On("AddAttendee", mock.Anything, eventID, userID).Return(true, nil)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(&models.Event{
		ID:        eventID,
		Attendees: []primitive.ObjectID{userID},
	}, nil)

	event, err := service.RSVP(context.Background(), eventID, userID)

	assert.NoError(t, err)
	assert.Contains(t, event.Attendees, userID)
}

func TestRSVP_Duplicate(t *testing.T) {
	eventRepo := new(MockEventRepository)
	service := NewEventService(eventRepo)

	eventID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	// Precondition fails because the user is already on the attendee list
	eventRepo.On("AddAttendee", mock.Anything, eventID, userID).Return(false, nil)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(&models.Event{
		ID:        eventID,
		Attendees: []primitive.ObjectID{userID},
	}, nil)

	_, err := service.RSVP(context.Background(), eventID, userID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRSVP_EventNotFound(t *testing.T) {
	eventRepo := new(MockEventRepository)
	service := NewEventService(eventRepo)

	eventID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	eventRepo.On("AddAttendee", mock.Anything, eventID, userID).Return(false, nil)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(nil, apperrors.ErrEventNotFound)

	_, err := service.RSVP(context.Background(), eventID, userID)

	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
