// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
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

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateOrganization = errors.New("organization already exists in this college")
	ErrOrganizationNotFound  = errors.New("organization not found")

	// ErrSoleMember means the last remaining member tried to leave, which
	// would strand the organization without any members or admins.
	ErrSoleMember = errors.New("sole member cannot leave the organization")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

// Create inserts a new organization. The founder is seeded as both admin
// and member. Name uniqueness is per college, enforced by index.
func (s *Store) Create(ctx context.Context, org models.Organization, founderID primitive.ObjectID) (models.Organization, error) {
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.Name = normalize.Name(org.Name)
	org.NameCI = text.Fold(org.Name)
	org.AdminIDs = []primitive.ObjectID{founderID}
	org.MemberIDs = []primitive.ObjectID{founderID}
	org.EventIDs = []primitive.ObjectID{}
	org.CreatedAt = now
	org.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, org); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Organization{}, ErrDuplicateOrganization
		}
		return models.Organization{}, err
	}
	return org, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, ErrOrganizationNotFound
	}
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// GetByIDs loads the given organizations in insertion order. Missing ids
// are silently skipped.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Organization, error) {
	if len(ids) == 0 {
		return []models.Organization{}, nil
	}
	cur, err := s.c.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// ListByCollege returns all organizations registered under a college.
func (s *Store) ListByCollege(ctx context.Context, collegeID primitive.ObjectID) ([]models.Organization, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"college_id": collegeID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// AddAdmin grants admin to an account in a single conditional update, so
// the role and the implied membership land atomically. Promoting an
// existing admin is a no-op.
func (s *Store) AddAdmin(ctx context.Context, orgID, accountID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": orgID},
		bson.M{
			"$addToSet": bson.M{"admin_ids": accountID, "member_ids": accountID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

// ToggleMembership flips the account's membership: members leave,
// non-members join. Both directions are single conditional updates, so
// concurrent toggles on the same account converge instead of corrupting
// the roster. Returns whether the account is a member afterwards.
//
// Leaving requires at least one other member ("member_ids.1" exists);
// otherwise the filter misses and the sole-member check below reports it.
func (s *Store) ToggleMembership(ctx context.Context, orgID, accountID primitive.ObjectID) (bool, error) {
	now := time.Now().UTC()

	// Attempt to leave: only matches when the account is a member and is
	// not the last one. Admin role is revoked together with membership.
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":          orgID,
			"member_ids":   accountID,
			"member_ids.1": bson.M{"$exists": true},
		},
		bson.M{
			"$pull": bson.M{"member_ids": accountID, "admin_ids": accountID},
			"$set":  bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return false, nil
	}

	// Attempt to join: only matches when the account is not yet a member.
	res, err = s.c.UpdateOne(ctx,
		bson.M{"_id": orgID, "member_ids": bson.M{"$ne": accountID}},
		bson.M{
			"$addToSet": bson.M{"member_ids": accountID},
			"$set":      bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}

	// Neither filter matched: the org is gone, or the account is the sole
	// remaining member.
	org, err := s.GetByID(ctx, orgID)
	if err != nil {
		return false, err
	}
	if org.IsMember(accountID) {
		return true, ErrSoleMember
	}
	// Lost a race against another writer; report current state.
	return false, nil
}

// AddEvent links an event to the organization (set semantics).
func (s *Store) AddEvent(ctx context.Context, orgID, eventID primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, orgID, bson.M{
		"$addToSet": bson.M{"event_ids": eventID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}
