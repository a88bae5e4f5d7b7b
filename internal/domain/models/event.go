// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event modes.
const (
	EventModeOnline  = "online"
	EventModeOffline = "offline"
)

// Event is a simple record hosted by an organization. The only validity
// rule is StartsAt < EndsAt, checked at creation.
type Event struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Mode        string             `bson:"mode" json:"mode"` // online | offline
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	PosterURL   string             `bson:"poster_url,omitempty" json:"poster_url,omitempty"`
	OrgID       primitive.ObjectID `bson:"org_id" json:"org_id"`
	CollegeID   primitive.ObjectID `bson:"college_id" json:"college_id"`
	StartsAt    time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt      time.Time          `bson:"ends_at" json:"ends_at"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
