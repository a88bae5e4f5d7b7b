package societies_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/campushub/internal/app/features/societies"
	accountstore "github.com/dalemusser/campushub/internal/app/store/accounts"
	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	organizationstore "github.com/dalemusser/campushub/internal/app/store/organizations"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newSocietiesHandler(db *mongo.Database) *societies.Handler {
	return societies.NewHandler(accountstore.New(db), collegestore.New(db), organizationstore.New(db), zap.NewNop())
}

func TestCreate_FounderIsAdminAndMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	acct := testutil.CreateAccount(t, db, "alice@acme.edu", &college.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies", map[string]string{
		"name":        "Chess Club",
		"description": "We play chess.",
	})
	req = testutil.WithAccount(req, &acct)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}

	var got models.Organization
	testutil.DecodeEnvelope(t, rec, &got)
	if !got.IsAdmin(acct.ID) || !got.IsMember(acct.ID) {
		t.Error("founder should be admin and member")
	}
	if got.CollegeID != college.ID {
		t.Error("society should belong to the founder's college")
	}

	// Cross-references land on both sides.
	updatedCollege, _ := collegestore.New(db).GetByID(ctx, college.ID)
	if len(updatedCollege.OrgIDs) != 1 || updatedCollege.OrgIDs[0] != got.ID {
		t.Error("college should reference the new society")
	}
	updatedAcct, _ := accountstore.New(db).GetByID(ctx, acct.ID)
	if len(updatedAcct.SocietyIDs) != 1 || updatedAcct.SocietyIDs[0] != got.ID {
		t.Error("founder account should reference the new society")
	}
}

func TestCreate_SanitizesDescription(t *testing.T) {
	db := testutil.SetupTestDB(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	acct := testutil.CreateAccount(t, db, "bob@acme.edu", &college.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies", map[string]string{
		"name":        "Coding Club",
		"description": "<p>Hack nights</p><script>alert('xss')</script>",
	})
	req = testutil.WithAccount(req, &acct)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	var got models.Organization
	testutil.DecodeEnvelope(t, rec, &got)
	if strings.Contains(got.Description, "script") {
		t.Errorf("description should be sanitized, got %q", got.Description)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	acct := testutil.CreateAccount(t, db, "carol@acme.edu", &college.ID)
	h := newSocietiesHandler(db)

	body := map[string]string{"name": "Drama Society", "description": "Weekly plays."}
	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := testutil.NewJSONRequest(t, "POST", "/societies", body)
		req = testutil.WithAccount(req, &acct)
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, req)
		if rec.Code != want {
			t.Fatalf("attempt %d: got %d, want %d (body: %s)", i, rec.Code, want, rec.Body.String())
		}
	}
}

func TestCreate_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	acct := testutil.CreateAccount(t, db, "dan@acme.edu", &college.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies", map[string]string{
		"name": "Nameless", "description": "  ",
	})
	req = testutil.WithAccount(req, &acct)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestCreate_FallbackCollegeOnlyWithoutAffiliation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateCollege(t, db, "Acme College", "Springfield")
	acct := testutil.CreateAccount(t, db, "erin@acme.edu", nil)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies", map[string]string{
		"name":        "Film Club",
		"description": "Movie nights.",
		"college":     "Acme College",
	})
	req = testutil.WithAccount(req, &acct)
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestAddAdmin_RequiresAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	founder := testutil.CreateAccount(t, db, "founder@acme.edu", &college.ID)
	outsider := testutil.CreateAccount(t, db, "outsider@acme.edu", &college.ID)
	target := testutil.CreateAccount(t, db, "target@acme.edu", &college.ID)
	org := testutil.CreateOrganization(t, db, "Chess Club", college.ID, founder.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies/add-admin", map[string]string{
		"org_id": org.ID.Hex(), "account_id": target.ID.Hex(),
	})
	req = testutil.WithAccount(req, &outsider)
	rec := httptest.NewRecorder()
	h.HandleAddAdmin(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestAddAdmin_GrantImpliesMembership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	founder := testutil.CreateAccount(t, db, "founder@acme.edu", &college.ID)
	target := testutil.CreateAccount(t, db, "target@acme.edu", &college.ID)
	org := testutil.CreateOrganization(t, db, "Chess Club", college.ID, founder.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies/add-admin", map[string]string{
		"org_id": org.ID.Hex(), "account_id": target.ID.Hex(),
	})
	req = testutil.WithAccount(req, &founder)
	rec := httptest.NewRecorder()
	h.HandleAddAdmin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	var got models.Organization
	testutil.DecodeEnvelope(t, rec, &got)
	if !got.IsAdmin(target.ID) || !got.IsMember(target.ID) {
		t.Error("admin grant must imply membership")
	}

	updatedTarget, _ := accountstore.New(db).GetByID(ctx, target.ID)
	if len(updatedTarget.SocietyIDs) != 1 {
		t.Error("target account should reference the society")
	}
}

func TestAddAdmin_UnknownTargetAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	founder := testutil.CreateAccount(t, db, "founder@acme.edu", &college.ID)
	org := testutil.CreateOrganization(t, db, "Chess Club", college.ID, founder.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies/add-admin", map[string]string{
		"org_id": org.ID.Hex(), "account_id": "64b000000000000000000000",
	})
	req = testutil.WithAccount(req, &founder)
	rec := httptest.NewRecorder()
	h.HandleAddAdmin(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestToggleMembership_JoinAndLeave(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	founder := testutil.CreateAccount(t, db, "founder@acme.edu", &college.ID)
	joiner := testutil.CreateAccount(t, db, "joiner@acme.edu", &college.ID)
	org := testutil.CreateOrganization(t, db, "Chess Club", college.ID, founder.ID)
	h := newSocietiesHandler(db)

	toggle := func() (*httptest.ResponseRecorder, bool) {
		req := testutil.NewJSONRequest(t, "POST", "/societies/toggle-membership", map[string]string{
			"org_id": org.ID.Hex(),
		})
		req = testutil.WithAccount(req, &joiner)
		rec := httptest.NewRecorder()
		h.HandleToggleMembership(rec, req)
		var resp struct {
			Member bool `json:"member"`
		}
		testutil.DecodeEnvelope(t, rec, &resp)
		return rec, resp.Member
	}

	rec, member := toggle()
	if rec.Code != http.StatusOK || !member {
		t.Fatalf("join: status %d, member %v", rec.Code, member)
	}
	acctAfterJoin, _ := accountstore.New(db).GetByID(ctx, joiner.ID)
	if len(acctAfterJoin.SocietyIDs) != 1 {
		t.Error("join should mirror onto the account")
	}

	rec, member = toggle()
	if rec.Code != http.StatusOK || member {
		t.Fatalf("leave: status %d, member %v", rec.Code, member)
	}
	acctAfterLeave, _ := accountstore.New(db).GetByID(ctx, joiner.ID)
	if len(acctAfterLeave.SocietyIDs) != 0 {
		t.Error("leave should mirror onto the account")
	}
}

func TestToggleMembership_SoleMemberConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	college := testutil.CreateCollege(t, db, "Acme College", "Springfield")
	founder := testutil.CreateAccount(t, db, "founder@acme.edu", &college.ID)
	org := testutil.CreateOrganization(t, db, "Solo Club", college.ID, founder.ID)
	h := newSocietiesHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/societies/toggle-membership", map[string]string{
		"org_id": org.ID.Hex(),
	})
	req = testutil.WithAccount(req, &founder)
	rec := httptest.NewRecorder()
	h.HandleToggleMembership(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}

	ctx := testutil.TestContext(t)
	got, _ := organizationstore.New(db).GetByID(ctx, org.ID)
	if !got.IsMember(founder.ID) || !got.IsAdmin(founder.ID) {
		t.Error("refused leave must not change the roster")
	}
}
