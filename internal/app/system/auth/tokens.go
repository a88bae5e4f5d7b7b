// internal/app/system/auth/tokens.go
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Cookie names match what the frontend already reads.
const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// AccessClaims is the payload of the short-lived access credential. It is
// stateless: everything a request needs to identify the caller rides in
// the token itself.
type AccessClaims struct {
	Handle   string `json:"handle,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies the access and renewal credentials.
//
// Signing keys are injected at construction; a missing or weak key is a
// startup error, not a per-request one.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	cookieDomain  string
	secure        bool
	log           *zap.Logger
}

// NewTokenManager validates the signing configuration and returns a manager.
func NewTokenManager(accessSecret, refreshSecret, cookieDomain string, accessTTL, refreshTTL time.Duration, secure bool, logger *zap.Logger) (*TokenManager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, fmt.Errorf("token signing keys are empty; provide ≥32 random chars each")
	}
	if len(accessSecret) < 32 || len(refreshSecret) < 32 {
		logger.Warn("token signing key is short; 32+ chars recommended",
			zap.Int("access_len", len(accessSecret)),
			zap.Int("refresh_len", len(refreshSecret)))
	}
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		cookieDomain:  cookieDomain,
		secure:        secure,
		log:           logger,
	}, nil
}

// MintAccess signs a short-lived access credential for the account.
func (tm *TokenManager) MintAccess(acct *models.Account) (string, error) {
	now := time.Now().UTC()
	handle := ""
	if acct.Handle != nil {
		handle = *acct.Handle
	}
	claims := AccessClaims{
		Handle:   handle,
		Email:    acct.Email,
		FullName: acct.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.accessSecret)
}

// MintRefresh signs a renewal credential carrying only the account id.
func (tm *TokenManager) MintRefresh(accountID primitive.ObjectID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   accountID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.refreshTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.refreshSecret)
}

// VerifyAccess checks signature and expiry and returns the claims.
// Expired tokens fail here; there is no silent refresh.
func (tm *TokenManager) VerifyAccess(token string) (*AccessClaims, error) {
	var claims AccessClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return tm.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return &claims, nil
}

// VerifyRefresh checks a renewal credential and returns the account id hex.
func (tm *TokenManager) VerifyRefresh(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return tm.refreshSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// SetAuthCookies writes both credentials. HttpOnly always; Secure and
// SameSite=None in production so the cookies survive the cross-site hop
// from the frontend origin. Lax in local dev over plain http.
func (tm *TokenManager) SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	sameSite := http.SameSiteLaxMode
	if tm.secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookie,
		Value:    access,
		Path:     "/",
		Domain:   tm.cookieDomain,
		MaxAge:   int(tm.accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: sameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    refresh,
		Path:     "/",
		Domain:   tm.cookieDomain,
		MaxAge:   int(tm.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: sameSite,
	})
}

// ClearAuthCookies expires both credentials immediately. The deletion
// cookies must match the attributes the originals were set with.
func (tm *TokenManager) ClearAuthCookies(w http.ResponseWriter) {
	sameSite := http.SameSiteLaxMode
	if tm.secure {
		sameSite = http.SameSiteNoneMode
	}
	for _, name := range []string{AccessCookie, RefreshCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   tm.cookieDomain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   tm.secure,
			SameSite: sameSite,
		})
	}
}
