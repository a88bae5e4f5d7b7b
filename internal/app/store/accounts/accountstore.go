// internal/app/store/accounts/accountstore.go
package accountstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/normalize"
	"github.com/dalemusser/campushub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrDuplicateHandle = errors.New("handle already exists")
	ErrAccountNotFound = errors.New("account not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("accounts")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// GetByEmail looks up an account by its normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	var acct models.Account
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// Create inserts a new account. The handle is usually derived from the
// email's local part; on a handle collision a short random suffix is
// appended and the insert retried once.
func (s *Store) Create(ctx context.Context, acct models.Account) (models.Account, error) {
	now := time.Now().UTC()
	acct.ID = primitive.NewObjectID()
	acct.Email = normalize.Email(acct.Email)
	acct.CreatedAt = now
	acct.UpdatedAt = now
	s.foldHandle(&acct)

	_, err := s.c.InsertOne(ctx, acct)
	if err == nil {
		return acct, nil
	}
	if !wafflemongo.IsDup(err) || acct.Handle == nil {
		return models.Account{}, err
	}

	// The email is checked by the caller before Create, so a duplicate
	// here is almost always the handle index. Retry with a suffix.
	suffixed := *acct.Handle + "-" + uuid.NewString()[:6]
	acct.Handle = &suffixed
	s.foldHandle(&acct)

	if _, err := s.c.InsertOne(ctx, acct); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Account{}, ErrDuplicateHandle
		}
		return models.Account{}, err
	}
	return acct, nil
}

// SetCollegeIfUnset binds the account to a college only when no
// affiliation exists yet (first-write-wins). Returns whether this call
// performed the write.
func (s *Store) SetCollegeIfUnset(ctx context.Context, id, collegeID primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "college_id": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"college_id": collegeID, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// UpdateRefreshToken persists the current renewal credential, overwriting
// any prior value. Rotation implicitly invalidates the previous lineage.
func (s *Store) UpdateRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"refresh_token": token, "updated_at": time.Now().UTC()},
	})
	return err
}

// ClearRefreshToken revokes the server-held renewal credential (logout).
func (s *Store) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$unset": bson.M{"refresh_token": ""},
		"$set":   bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// HandleExistsForOther checks if another account already owns the handle.
func (s *Store) HandleExistsForOther(ctx context.Context, handle string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"handle_ci": normalize.Handle(handle),
		"_id":       bson.M{"$ne": excludeID},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CompleteRegistration sets the profile fields and marks the account
// fully registered, returning the updated document.
func (s *Store) CompleteRegistration(ctx context.Context, id primitive.ObjectID, fullName, handle, department, levelOrYear string) (models.Account, error) {
	after := options.After
	var acct models.Account
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"full_name":        normalize.Name(fullName),
			"handle":           normalize.Name(handle),
			"handle_ci":        text.Fold(handle),
			"department":       normalize.Name(department),
			"level_or_year":    normalize.Name(levelOrYear),
			"fully_registered": true,
			"updated_at":       time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Account{}, ErrDuplicateHandle
		}
		return models.Account{}, err
	}
	return acct, nil
}

// AddSociety records an organization membership on the account side.
// Set semantics: adding an existing entry is a no-op.
func (s *Store) AddSociety(ctx context.Context, id, orgID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"society_ids": orgID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// RemoveSociety drops an organization membership from the account side.
func (s *Store) RemoveSociety(ctx context.Context, id, orgID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{"society_ids": orgID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// Exists reports whether the account id refers to a live account.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) foldHandle(acct *models.Account) {
	if acct.Handle != nil {
		ci := text.Fold(*acct.Handle)
		acct.HandleCI = &ci
	}
}
