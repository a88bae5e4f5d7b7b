// internal/app/store/colleges/collegestore.go
package collegestore

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/normalize"
	"github.com/dalemusser/campushub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultPageSize caps unpaginated college searches.
const DefaultPageSize = 21

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateCollege = errors.New("college already exists")
	ErrCollegeNotFound  = errors.New("college not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("colleges")}
}

// Create inserts a new college. Name uniqueness is enforced by index.
func (s *Store) Create(ctx context.Context, college models.College) (models.College, error) {
	now := time.Now().UTC()
	college.ID = primitive.NewObjectID()
	college.Name = normalize.Name(college.Name)
	college.NameCI = text.Fold(college.Name)
	college.CreatedAt = now
	college.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, college); err != nil {
		if wafflemongo.IsDup(err) {
			return models.College{}, ErrDuplicateCollege
		}
		return models.College{}, err
	}
	return college, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.College, error) {
	var college models.College
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&college)
	if err == mongo.ErrNoDocuments {
		return models.College{}, ErrCollegeNotFound
	}
	if err != nil {
		return models.College{}, err
	}
	return college, nil
}

// ResolveNameOrID finds a college by exact name or, when the value parses
// as a hex object id, by id. Sign-in requests may carry either form.
func (s *Store) ResolveNameOrID(ctx context.Context, nameOrID string) (models.College, error) {
	name := normalize.Name(nameOrID)
	filter := bson.M{"name": name}
	if oid, err := primitive.ObjectIDFromHex(nameOrID); err == nil {
		filter = bson.M{"$or": bson.A{
			bson.M{"_id": oid},
			bson.M{"name": name},
		}}
	}

	var college models.College
	err := s.c.FindOne(ctx, filter).Decode(&college)
	if err == mongo.ErrNoDocuments {
		return models.College{}, ErrCollegeNotFound
	}
	if err != nil {
		return models.College{}, err
	}
	return college, nil
}

// Search returns colleges whose name or location contains a word starting
// with the term, case-insensitively. Results are in insertion order; an
// empty term lists the first page of all colleges.
func (s *Store) Search(ctx context.Context, term string, page, pageSize int) ([]models.College, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}

	filter := bson.M{}
	if term = normalize.Name(term); term != "" {
		re := primitive.Regex{Pattern: `\b` + regexp.QuoteMeta(term), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"name": re},
			bson.M{"location": re},
		}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var colleges []models.College
	if err := cur.All(ctx, &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

// AddEmailFormat registers an accepted email domain suffix. The suffix is
// normalized to a leading "@"; re-adding an existing one is a no-op.
// Returns whether the set actually grew.
func (s *Store) AddEmailFormat(ctx context.Context, id primitive.ObjectID, suffix string) (bool, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"email_formats": normalize.DomainSuffix(suffix)},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrCollegeNotFound
	}
	return res.ModifiedCount > 0, nil
}

// AddMember records an account on the college roster (set semantics).
func (s *Store) AddMember(ctx context.Context, id, accountID primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"member_ids": accountID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCollegeNotFound
	}
	return nil
}

// AddOrg links an organization to the college (set semantics).
func (s *Store) AddOrg(ctx context.Context, id, orgID primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"org_ids": orgID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCollegeNotFound
	}
	return nil
}

// UpsertByName inserts a college or updates its location, keyed by exact
// name. Used by the CSV importer, which must be safe to re-run.
func (s *Store) UpsertByName(ctx context.Context, name, location string) error {
	name = normalize.Name(name)
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{
			"$set": bson.M{"location": normalize.Name(location), "updated_at": now},
			"$setOnInsert": bson.M{
				"_id":           primitive.NewObjectID(),
				"name":          name,
				"name_ci":       text.Fold(name),
				"email_formats": bson.A{},
				"member_ids":    bson.A{},
				"org_ids":       bson.A{},
				"created_at":    now,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
