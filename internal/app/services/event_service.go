package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deniz/alumlink/internal/app/models"
	"github.com/deniz/alumlink/internal/app/models/dto"
	"github.com/deniz/alumlink/internal/app/repositories"
	"github.com/deniz/alumlink/internal/pkg/apperrors"
)

// EventService handles event postings and RSVPs
type EventService struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// Create inserts a new event stamped with the caller as organizer
func (s *EventService) Create(ctx context.Context, organizerID primitive.ObjectID, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Type:        req.Type,
		Organizer:   organizerID,
		Attendees:   []primitive.ObjectID{},
		CreatedAt:   time.Now(),
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id
	return event, nil
}

// List returns all events, soonest first, with the organizer populated
func (s *EventService) List(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.ListAll(ctx)
}

// RSVP appends the caller to the attendee list. The append carries its own
// not-already-present precondition, so concurrent duplicate RSVPs cannot
// both succeed.
func (s *EventService) RSVP(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Event, error) {
	matched, err := s.eventRepo.AddAttendee(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if !matched {
		// Either no such event, or the user already RSVP'd
		if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
			return nil, err
		}
		return nil, apperrors.NewConflictError("already RSVP'd to this event")
	}

	return s.eventRepo.GetByID(ctx, eventID)
}
