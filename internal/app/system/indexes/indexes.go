// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAccounts(ctx, db); err != nil {
		problems = append(problems, "accounts: "+err.Error())
	}
	if err := ensureColleges(ctx, db); err != nil {
		problems = append(problems, "colleges: "+err.Error())
	}
	if err := ensureOrganizations(ctx, db); err != nil {
		problems = append(problems, "organizations: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := a != nil && *a
	bv := b != nil && *b
	return av == bv
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()

		existing := map[string]existingIndex{} // sig -> index
		if cur, err := coll.Indexes().List(ctx); err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) {
				zap.L().Debug("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}
			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureAccounts(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("accounts")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email is the account identity: one account per verified email.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_accounts_email"),
		},
		// Handles are unique case-insensitively; sparse so accounts that
		// have not picked one yet don't collide on the missing field.
		{
			Keys:    bson.D{{Key: "handle_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_accounts_handle_ci"),
		},
		{
			Keys:    bson.D{{Key: "college_id", Value: 1}},
			Options: options.Index().SetName("idx_accounts_college"),
		},
	})
}

func ensureColleges(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("colleges")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_colleges_name"),
		},
		// Search path: word-prefix regex over name and location.
		{
			Keys:    bson.D{{Key: "location", Value: 1}},
			Options: options.Index().SetName("idx_colleges_location"),
		},
	})
}

func ensureOrganizations(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("organizations")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Org names are unique within a college, compared case-insensitively.
		{
			Keys:    bson.D{{Key: "college_id", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_orgs_college_name_ci"),
		},
		{
			Keys:    bson.D{{Key: "member_ids", Value: 1}},
			Options: options.Index().SetName("idx_orgs_members"),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("events")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Listing path: an org's events ordered by start time.
		{
			Keys:    bson.D{{Key: "org_id", Value: 1}, {Key: "starts_at", Value: 1}},
			Options: options.Index().SetName("idx_events_org_starts_at"),
		},
	})
}
