package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrAlreadyLiked  = errors.New("event already liked by this user")
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, organizer string, update EventUpdate, slug string) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID, organizer string) error
	ListEvents(ctx context.Context, offset, limit int) ([]*Event, error)
	ListEventsByCategory(ctx context.Context, category string) ([]*Event, error)
	SearchEventsByTitle(ctx context.Context, title string) ([]*Event, error)
	LikeEvent(ctx context.Context, id primitive.ObjectID, userID string) error
	CommentEvent(ctx context.Context, id primitive.ObjectID, comment Comment) error
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("invalid event data: %w", err)
	}
	if err := event.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare event for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event into database: %w", err)
	}

	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error finding event by ID: %v", err)
	}

	return &event, nil
}

// UpdateEvent overwrites the given fields on the event owned by organizer.
// The ownership condition is part of the filter so a non-owner can never win
// a race against the owner's own update.
func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, organizer string, update EventUpdate, slug string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	fields := bson.M{
		"title":            update.Title,
		"content":          update.Content,
		"slug":             slug,
		"category":         update.Category,
		"ticketPrice":      update.TicketPrice,
		"eventDate":        update.EventDate,
		"location":         update.Location,
		"specialApperence": update.SpecialApperence,
		"updated_at":       time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err = col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "organizer": organizer},
		bson.M{"$set": fields},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error updating event: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID, organizer string) error {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id, "organizer": organizer})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, offset, limit int) ([]*Event, error) {
	// limit 0 means no pagination, matching the historic behavior of the API.
	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetSkip(int64(offset)).SetLimit(int64(limit))
	}
	return mdb.findEvents(ctx, bson.M{}, findOpts)
}

func (mdb *MongodbRepo) ListEventsByCategory(ctx context.Context, category string) ([]*Event, error) {
	return mdb.findEvents(ctx, bson.M{"category": category}, options.Find())
}

func (mdb *MongodbRepo) SearchEventsByTitle(ctx context.Context, title string) ([]*Event, error) {
	filter := bson.M{"title": bson.M{"$regex": primitive.Regex{Pattern: title, Options: "i"}}}
	return mdb.findEvents(ctx, filter, options.Find())
}

func (mdb *MongodbRepo) findEvents(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}

// LikeEvent adds userID to the like set and bumps the counter as a single
// conditional update, so the at-most-once invariant holds under concurrent
// likes of the same event.
func (mdb *MongodbRepo) LikeEvent(ctx context.Context, id primitive.ObjectID, userID string) error {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"_id": id, "likes.users": bson.M{"$ne": userID}}
	update := bson.M{
		"$inc":      bson.M{"likes.count": 1},
		"$addToSet": bson.M{"likes.users": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	res, err := col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error liking event: %v", err)
	}
	if res.MatchedCount == 0 {
		// Either the event does not exist or this user already liked it.
		if err := col.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrEventNotFound
			}
			return fmt.Errorf("error checking event: %v", err)
		}
		return ErrAlreadyLiked
	}
	return nil
}

func (mdb *MongodbRepo) CommentEvent(ctx context.Context, id primitive.ObjectID, comment Comment) error {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error commenting event: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}
