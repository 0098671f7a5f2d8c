package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhive/server/internal/helpers"
	"github.com/eventhive/server/internal/models"
)

// ErrNotOwner is returned when a caller mutates an event created by someone
// else. Handlers surface it as 401, the status the API has always used for
// ownership failures.
var ErrNotOwner = errors.New("event doesn't belong to you")

type EventService struct {
	eventsRepo models.EventRepo
}

func NewEventService(eventsRepo models.EventRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

type CreateEventInput struct {
	Title            string
	Content          string
	EventImage       string
	Category         string
	TicketPrice      float64
	EventDate        string
	Location         string
	SpecialApperence string
}

func (es *EventService) CreateEvent(ctx context.Context, input CreateEventInput, organizer string) (*models.Event, error) {
	if strings.TrimSpace(organizer) == "" {
		return nil, fmt.Errorf("organizer is required")
	}
	if strings.TrimSpace(input.EventImage) == "" {
		return nil, fmt.Errorf("event image is required")
	}

	now := time.Now()
	event := &models.Event{
		Title:            input.Title,
		Slug:             helpers.GenerateSlug(input.Title),
		Content:          input.Content,
		EventImage:       input.EventImage,
		Category:         input.Category,
		TicketPrice:      input.TicketPrice,
		EventDate:        input.EventDate,
		Location:         input.Location,
		SpecialApperence: input.SpecialApperence,
		Organizer:        organizer,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return es.eventsRepo.GetEventByID(ctx, id)
}

func (es *EventService) UpdateEvent(ctx context.Context, id primitive.ObjectID, organizer string, update models.EventUpdate) (*models.Event, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Organizer != organizer {
		return nil, ErrNotOwner
	}

	return es.eventsRepo.UpdateEvent(ctx, id, organizer, update, helpers.GenerateSlug(update.Title))
}

func (es *EventService) DeleteEvent(ctx context.Context, id primitive.ObjectID, organizer string) error {
	event, err := es.eventsRepo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if event.Organizer != organizer {
		return ErrNotOwner
	}

	return es.eventsRepo.DeleteEvent(ctx, id, organizer)
}

func (es *EventService) ListEvents(ctx context.Context, offset, limit int) ([]*models.Event, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("invalid offset or limit")
	}
	return es.eventsRepo.ListEvents(ctx, offset, limit)
}

func (es *EventService) ListEventsByCategory(ctx context.Context, category string) ([]*models.Event, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}
	return es.eventsRepo.ListEventsByCategory(ctx, category)
}

func (es *EventService) SearchEventsByTitle(ctx context.Context, title string) ([]*models.Event, error) {
	return es.eventsRepo.SearchEventsByTitle(ctx, title)
}

func (es *EventService) LikeEvent(ctx context.Context, id primitive.ObjectID, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user ID cannot be empty")
	}
	return es.eventsRepo.LikeEvent(ctx, id, userID)
}

func (es *EventService) CommentEvent(ctx context.Context, id primitive.ObjectID, userID, text string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user ID cannot be empty")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	comment := models.Comment{
		User:      userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	return es.eventsRepo.CommentEvent(ctx, id, comment)
}
