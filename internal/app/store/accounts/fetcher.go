// internal/app/store/accounts/fetcher.go
package accountstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/timeouts"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher implements auth.AccountFetcher, loading fresh account data on
// each request so membership and profile changes take effect immediately.
type Fetcher struct {
	accounts *mongo.Collection
}

// NewFetcher creates an AccountFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{accounts: db.Collection("accounts")}
}

// FetchAccount retrieves an account by its hex id. It returns nil if the
// id is malformed, the account is missing, or any error occurs.
func (f *Fetcher) FetchAccount(ctx context.Context, accountID string) *models.Account {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var acct models.Account
	if err := f.accounts.FindOne(ctx, bson.M{"_id": oid}).Decode(&acct); err != nil {
		return nil
	}
	return &acct
}
