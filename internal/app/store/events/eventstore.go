// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/normalize"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrEventNotFound = errors.New("event not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// Create inserts a new event under its organization.
func (s *Store) Create(ctx context.Context, event models.Event) (models.Event, error) {
	now := time.Now().UTC()
	event.ID = primitive.NewObjectID()
	event.Name = normalize.Name(event.Name)
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var event models.Event
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return models.Event{}, ErrEventNotFound
	}
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// ListByOrg returns an organization's events ordered by start time.
func (s *Store) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]models.Event, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"org_id": orgID},
		options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
