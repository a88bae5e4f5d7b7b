// Package googleid verifies externally-issued Google identity assertions
// and extracts the verified email and display attributes.
//
// Two assertion forms are accepted:
//   - an ID token, validated offline against Google's signing keys and the
//     configured audience (primary path)
//   - an OAuth access token, resolved through Google's userinfo endpoint
//     (fallback for clients that only hold an access token)
//
// The verifier has no side effects; it is constructed with explicit
// configuration so tests can substitute the validation function.
package googleid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

var (
	// ErrInvalidAssertion means the assertion could not be parsed or failed
	// signature/audience checks.
	ErrInvalidAssertion = errors.New("invalid identity assertion")

	// ErrEmailUnverified means the provider reports the email as unverified.
	// Callers surface this as "not authenticated", not as a hard failure.
	ErrEmailUnverified = errors.New("email not verified by identity provider")
)

// Claims are the verified attributes extracted from an assertion.
type Claims struct {
	Email     string
	FullName  string
	AvatarURL string
}

// Verifier validates an identity assertion and returns its claims.
type Verifier interface {
	VerifyIDToken(ctx context.Context, token string) (*Claims, error)
	VerifyAccessToken(ctx context.Context, token string) (*Claims, error)
}

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Google verifies assertions issued by Google for a single OAuth client ID.
type Google struct {
	Audience string

	// validate and userInfoURL are overridable in tests.
	validate    func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
	userInfoURL string
}

// NewGoogle returns a verifier bound to the given OAuth client ID.
func NewGoogle(audience string) *Google {
	return &Google{
		Audience:    audience,
		validate:    idtoken.Validate,
		userInfoURL: userInfoURL,
	}
}

// VerifyIDToken checks the token's signature and audience and extracts the
// verified email, display name, and avatar URL.
func (g *Google) VerifyIDToken(ctx context.Context, token string) (*Claims, error) {
	payload, err := g.validate(ctx, token, g.Audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidAssertion
	}
	if !boolClaim(payload.Claims["email_verified"]) {
		return nil, ErrEmailUnverified
	}

	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &Claims{Email: email, FullName: name, AvatarURL: picture}, nil
}

// VerifyAccessToken resolves an OAuth access token through Google's
// userinfo endpoint.
func (g *Google) VerifyAccessToken(ctx context.Context, token string) (*Claims, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))

	resp, err := client.Get(g.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: userinfo status %d", ErrInvalidAssertion, resp.StatusCode)
	}

	var info struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}
	if info.Email == "" {
		return nil, ErrInvalidAssertion
	}
	if !info.EmailVerified {
		return nil, ErrEmailUnverified
	}

	return &Claims{Email: info.Email, FullName: info.Name, AvatarURL: info.Picture}, nil
}

// boolClaim accepts both the bool and the string form of email_verified;
// some provider libraries surface it as the literal "true".
func boolClaim(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}
