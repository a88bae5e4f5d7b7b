// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/normalize"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateCollege inserts a college fixture and returns it.
func CreateCollege(t *testing.T, db *mongo.Database, name, location string, emailFormats ...string) models.College {
	t.Helper()

	suffixes := make([]string, 0, len(emailFormats))
	for _, f := range emailFormats {
		suffixes = append(suffixes, normalize.DomainSuffix(f))
	}

	now := time.Now().UTC()
	college := models.College{
		ID:           primitive.NewObjectID(),
		Name:         normalize.Name(name),
		NameCI:       text.Fold(name),
		Location:     location,
		EmailFormats: suffixes,
		MemberIDs:    []primitive.ObjectID{},
		OrgIDs:       []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	insert(t, db, "colleges", college)
	return college
}

// CreateAccount inserts a minimally-provisioned account fixture. The
// handle is derived from the email's local part.
func CreateAccount(t *testing.T, db *mongo.Database, email string, collegeID *primitive.ObjectID) models.Account {
	t.Helper()

	handle := normalize.LocalPart(email)
	handleCI := text.Fold(handle)
	now := time.Now().UTC()
	acct := models.Account{
		ID:         primitive.NewObjectID(),
		Handle:     &handle,
		HandleCI:   &handleCI,
		Email:      normalize.Email(email),
		FullName:   handle,
		CollegeID:  collegeID,
		SocietyIDs: []primitive.ObjectID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	insert(t, db, "accounts", acct)
	return acct
}

// CreateOrganization inserts an organization fixture with the founder as
// sole admin and member.
func CreateOrganization(t *testing.T, db *mongo.Database, name string, collegeID, founderID primitive.ObjectID) models.Organization {
	t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Name:      normalize.Name(name),
		NameCI:    text.Fold(name),
		CollegeID: collegeID,
		AdminIDs:  []primitive.ObjectID{founderID},
		MemberIDs: []primitive.ObjectID{founderID},
		EventIDs:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	insert(t, db, "organizations", org)
	return org
}

// CreateEvent inserts an event fixture starting an hour from now.
func CreateEvent(t *testing.T, db *mongo.Database, name string, orgID, collegeID primitive.ObjectID) models.Event {
	t.Helper()

	now := time.Now().UTC()
	event := models.Event{
		ID:        primitive.NewObjectID(),
		Name:      normalize.Name(name),
		Mode:      models.EventModeOffline,
		OrgID:     orgID,
		CollegeID: collegeID,
		StartsAt:  now.Add(time.Hour),
		EndsAt:    now.Add(2 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	insert(t, db, "events", event)
	return event
}

func insert(t *testing.T, db *mongo.Database, collection string, doc any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.Collection(collection).InsertOne(ctx, doc); err != nil {
		t.Fatalf("failed to insert %s fixture: %v", collection, err)
	}
}
