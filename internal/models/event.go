package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventColName = "events"

// Likes pairs the counter with the set of user ids that produced it. A user
// appears at most once in Users; the repo enforces this with a single
// conditional update rather than read-modify-write.
type Likes struct {
	Count int      `bson:"count" json:"count"`
	Users []string `bson:"users" json:"users"`
}

type Comment struct {
	User      string    `bson:"user" json:"user"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Event struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title" validate:"required"`
	Slug             string             `bson:"slug" json:"slug"`
	Content          string             `bson:"content" json:"content" validate:"required"`
	EventImage       string             `bson:"eventImage" json:"eventImage" validate:"required"`
	Category         string             `bson:"category" json:"category"`
	TicketPrice      float64            `bson:"ticketPrice" json:"ticketPrice"`
	EventDate        string             `bson:"eventDate" json:"eventDate"`
	Location         string             `bson:"location" json:"location"`
	SpecialApperence string             `bson:"specialApperence" json:"specialApperence,omitempty"`
	Likes            Likes              `bson:"likes" json:"likes"`
	Comments         []Comment          `bson:"comments" json:"comments"`
	Organizer        string             `bson:"organizer" json:"organizer"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

func (e *Event) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if e.Likes.Users == nil {
		e.Likes.Users = []string{}
	}
	if e.Comments == nil {
		e.Comments = []Comment{}
	}
	return nil
}

// EventUpdate carries the caller-writable fields of an update-event request.
type EventUpdate struct {
	Title            string  `json:"title" validate:"required"`
	Content          string  `json:"content" validate:"required"`
	Category         string  `json:"category"`
	TicketPrice      float64 `json:"ticketPrice"`
	EventDate        string  `json:"eventDate"`
	Location         string  `json:"location"`
	SpecialApperence string  `json:"specialApperence"`
}
