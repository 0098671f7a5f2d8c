package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhive/server/internal/models"
)

// fakeEventRepo implements models.EventRepo for service tests.
type fakeEventRepo struct {
	createErr   error
	getResult   *models.Event
	getErr      error
	updateErr   error
	deleteErr   error
	listResult  []*models.Event
	listErr     error
	likeErr     error
	commentErr  error
	lastCreated *models.Event
	lastUpdate  models.EventUpdate
	lastSlug    string
	lastLikeUID string
	lastComment models.Comment
	updateCalls int
	deleteCalls int
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	f.lastCreated = event
	if f.createErr != nil {
		return nil, f.createErr
	}
	return event, nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return f.getResult, f.getErr
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, organizer string, update models.EventUpdate, slug string) (*models.Event, error) {
	f.updateCalls++
	f.lastUpdate = update
	f.lastSlug = slug
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.getResult, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID, organizer string) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, offset, limit int) ([]*models.Event, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventRepo) ListEventsByCategory(ctx context.Context, category string) ([]*models.Event, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventRepo) SearchEventsByTitle(ctx context.Context, title string) ([]*models.Event, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventRepo) LikeEvent(ctx context.Context, id primitive.ObjectID, userID string) error {
	f.lastLikeUID = userID
	return f.likeErr
}

func (f *fakeEventRepo) CommentEvent(ctx context.Context, id primitive.ObjectID, comment models.Comment) error {
	f.lastComment = comment
	return f.commentErr
}

const organizerID = "9f2c4e85-6f6b-4c57-9d3a-111111111111"

func TestCreateEventDerivesSlugAndOrganizer(t *testing.T) {
	repo := &fakeEventRepo{}
	es := NewEventService(repo)

	input := CreateEventInput{
		Title:      "Summer FESTival",
		Content:    "Three days of music",
		EventImage: "http://localhost:8080/event-images/img-1.png",
		Category:   "music",
	}

	event, err := es.CreateEvent(context.Background(), input, organizerID)
	require.NoError(t, err)

	assert.Equal(t, "summer-festival", event.Slug)
	assert.Equal(t, organizerID, event.Organizer)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
	assert.Same(t, event, repo.lastCreated)
}

func TestCreateEventRequiresImage(t *testing.T) {
	es := NewEventService(&fakeEventRepo{})

	_, err := es.CreateEvent(context.Background(), CreateEventInput{
		Title:   "Launch",
		Content: "Kickoff",
	}, organizerID)
	assert.Error(t, err)
}

func TestCreateEventRequiresOrganizer(t *testing.T) {
	es := NewEventService(&fakeEventRepo{})

	_, err := es.CreateEvent(context.Background(), CreateEventInput{
		Title:      "Launch",
		Content:    "Kickoff",
		EventImage: "x.png",
	}, "  ")
	assert.Error(t, err)
}

func TestUpdateEventNotOwner(t *testing.T) {
	repo := &fakeEventRepo{
		getResult: &models.Event{Organizer: "someone-else"},
	}
	es := NewEventService(repo)

	_, err := es.UpdateEvent(context.Background(), primitive.NewObjectID(), organizerID, models.EventUpdate{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Zero(t, repo.updateCalls, "stored event must stay unchanged")
}

func TestUpdateEventNotFound(t *testing.T) {
	repo := &fakeEventRepo{getErr: models.ErrEventNotFound}
	es := NewEventService(repo)

	_, err := es.UpdateEvent(context.Background(), primitive.NewObjectID(), organizerID, models.EventUpdate{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestUpdateEventRegeneratesSlug(t *testing.T) {
	repo := &fakeEventRepo{
		getResult: &models.Event{Organizer: organizerID, Slug: "old-title"},
	}
	es := NewEventService(repo)

	_, err := es.UpdateEvent(context.Background(), primitive.NewObjectID(), organizerID, models.EventUpdate{
		Title:   "Brand New Title",
		Content: "updated",
	})
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", repo.lastSlug)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestDeleteEventNotOwner(t *testing.T) {
	repo := &fakeEventRepo{
		getResult: &models.Event{Organizer: "someone-else"},
	}
	es := NewEventService(repo)

	err := es.DeleteEvent(context.Background(), primitive.NewObjectID(), organizerID)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Zero(t, repo.deleteCalls)
}

func TestListEventsRejectsNegativeOffset(t *testing.T) {
	es := NewEventService(&fakeEventRepo{})

	_, err := es.ListEvents(context.Background(), -1, 10)
	assert.Error(t, err)
}

func TestListEventsByCategoryRequiresCategory(t *testing.T) {
	es := NewEventService(&fakeEventRepo{})

	_, err := es.ListEventsByCategory(context.Background(), " ")
	assert.Error(t, err)
}

func TestLikeEventPassesUser(t *testing.T) {
	repo := &fakeEventRepo{}
	es := NewEventService(repo)

	err := es.LikeEvent(context.Background(), primitive.NewObjectID(), organizerID)
	require.NoError(t, err)
	assert.Equal(t, organizerID, repo.lastLikeUID)
}

func TestLikeEventAlreadyLiked(t *testing.T) {
	repo := &fakeEventRepo{likeErr: models.ErrAlreadyLiked}
	es := NewEventService(repo)

	err := es.LikeEvent(context.Background(), primitive.NewObjectID(), organizerID)
	assert.ErrorIs(t, err, models.ErrAlreadyLiked)
}

func TestCommentEventAppendsUserAndText(t *testing.T) {
	repo := &fakeEventRepo{}
	es := NewEventService(repo)

	err := es.CommentEvent(context.Background(), primitive.NewObjectID(), organizerID, "great lineup")
	require.NoError(t, err)
	assert.Equal(t, organizerID, repo.lastComment.User)
	assert.Equal(t, "great lineup", repo.lastComment.Text)
	assert.False(t, repo.lastComment.CreatedAt.IsZero())
}

func TestCommentEventRejectsEmptyText(t *testing.T) {
	es := NewEventService(&fakeEventRepo{})

	err := es.CommentEvent(context.Background(), primitive.NewObjectID(), organizerID, "   ")
	assert.Error(t, err)
}
