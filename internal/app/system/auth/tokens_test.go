package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	testAccessKey  = "test-access-key-must-be-32-chars-ok"
	testRefreshKey = "test-refresh-key-must-be-32-chars-x"
)

func newTestTokenManager(t *testing.T, accessTTL time.Duration) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager(testAccessKey, testRefreshKey, "", accessTTL, 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create token manager: %v", err)
	}
	return tm
}

func testAccount() *models.Account {
	handle := "alice"
	return &models.Account{
		ID:       primitive.NewObjectID(),
		Handle:   &handle,
		Email:    "alice@college.edu",
		FullName: "Alice Example",
	}
}

func TestNewTokenManager_EmptyKey(t *testing.T) {
	_, err := auth.NewTokenManager("", testRefreshKey, "", time.Minute, time.Hour, false, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	tm := newTestTokenManager(t, 15*time.Minute)
	acct := testAccount()

	token, err := tm.MintAccess(acct)
	if err != nil {
		t.Fatalf("MintAccess failed: %v", err)
	}

	claims, err := tm.VerifyAccess(token)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if claims.Subject != acct.ID.Hex() {
		t.Errorf("subject: got %q, want %q", claims.Subject, acct.ID.Hex())
	}
	if claims.Email != "alice@college.edu" {
		t.Errorf("email: got %q", claims.Email)
	}
	if claims.Handle != "alice" {
		t.Errorf("handle: got %q", claims.Handle)
	}
}

func TestAccessToken_Expired(t *testing.T) {
	tm := newTestTokenManager(t, -time.Minute)
	token, err := tm.MintAccess(testAccount())
	if err != nil {
		t.Fatalf("MintAccess failed: %v", err)
	}

	if _, err := tm.VerifyAccess(token); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestAccessToken_WrongKey(t *testing.T) {
	tm := newTestTokenManager(t, 15*time.Minute)
	token, err := tm.MintAccess(testAccount())
	if err != nil {
		t.Fatalf("MintAccess failed: %v", err)
	}

	other, err := auth.NewTokenManager(
		"other-access-key-also-32-chars-long!", testRefreshKey, "",
		15*time.Minute, 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create second token manager: %v", err)
	}

	if _, err := other.VerifyAccess(token); err == nil {
		t.Error("expected verification with a different key to fail")
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	tm := newTestTokenManager(t, 15*time.Minute)
	id := primitive.NewObjectID()

	token, err := tm.MintRefresh(id)
	if err != nil {
		t.Fatalf("MintRefresh failed: %v", err)
	}

	sub, err := tm.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("VerifyRefresh failed: %v", err)
	}
	if sub != id.Hex() {
		t.Errorf("subject: got %q, want %q", sub, id.Hex())
	}
}

func TestRefreshToken_NotAcceptedAsAccess(t *testing.T) {
	tm := newTestTokenManager(t, 15*time.Minute)
	refresh, err := tm.MintRefresh(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("MintRefresh failed: %v", err)
	}

	// Separate signing keys mean a renewal credential can never pass the
	// access-credential check.
	if _, err := tm.VerifyAccess(refresh); err == nil {
		t.Error("expected refresh token to fail access verification")
	}
}

func TestSetAuthCookies_Attributes(t *testing.T) {
	tm := newTestTokenManager(t, 15*time.Minute)
	rec := httptest.NewRecorder()

	tm.SetAuthCookies(rec, "access-value", "refresh-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}
	for _, name := range []string{auth.AccessCookie, auth.RefreshCookie} {
		c, ok := byName[name]
		if !ok {
			t.Fatalf("missing cookie %q", name)
		}
		if !c.HttpOnly {
			t.Errorf("cookie %q should be HttpOnly", name)
		}
		if c.Path != "/" {
			t.Errorf("cookie %q path: got %q", name, c.Path)
		}
	}
}

func TestClearAuthCookies(t *testing.T) {
	tm := newTestTokenManager(t, 15*time.Minute)
	rec := httptest.NewRecorder()

	tm.ClearAuthCookies(rec)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge != -1 {
			t.Errorf("cookie %q should be expired, got MaxAge=%d", c.Name, c.MaxAge)
		}
		if c.Value != "" {
			t.Errorf("cookie %q should be emptied", c.Name)
		}
	}

	if !strings.Contains(rec.Header().Get("Set-Cookie"), auth.AccessCookie) {
		t.Error("expected Set-Cookie headers for clearing")
	}
}
