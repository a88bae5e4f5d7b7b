package eventstore_test

import (
	"errors"
	"testing"
	"time"

	eventstore "github.com/dalemusser/campushub/internal/app/store/events"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := eventstore.New(db)

	now := time.Now().UTC()
	created, err := store.Create(ctx, models.Event{
		Name:      "Orientation",
		Mode:      models.EventModeOffline,
		OrgID:     primitive.NewObjectID(),
		CollegeID: primitive.NewObjectID(),
		StartsAt:  now.Add(time.Hour),
		EndsAt:    now.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected an assigned id")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Orientation" {
		t.Errorf("name: got %q", got.Name)
	}
}

func TestGetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := eventstore.New(db)

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, eventstore.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestListByOrg_OrderedByStart(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := eventstore.New(db)

	orgID := primitive.NewObjectID()
	collegeID := primitive.NewObjectID()
	base := time.Now().UTC().Truncate(time.Second)

	// Inserted out of order on purpose.
	for _, e := range []struct {
		name  string
		start time.Time
	}{
		{"Later", base.Add(48 * time.Hour)},
		{"Sooner", base.Add(1 * time.Hour)},
		{"Middle", base.Add(24 * time.Hour)},
	} {
		if _, err := store.Create(ctx, models.Event{
			Name:      e.name,
			Mode:      models.EventModeOnline,
			OrgID:     orgID,
			CollegeID: collegeID,
			StartsAt:  e.start,
			EndsAt:    e.start.Add(time.Hour),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := store.ListByOrg(ctx, orgID)
	if err != nil {
		t.Fatalf("ListByOrg failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	want := []string{"Sooner", "Middle", "Later"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}

	other, err := store.ListByOrg(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListByOrg failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no events for another org, got %d", len(other))
	}
}
