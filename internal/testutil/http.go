// internal/testutil/http.go
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/campushub/internal/app/system/auth"
	"github.com/dalemusser/campushub/internal/domain/models"
)

// NewJSONRequest builds a request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithAccount attaches an account to the request context the way the
// session guard would, bypassing credential verification.
func WithAccount(r *http.Request, acct *models.Account) *http.Request {
	return auth.WithTestAccount(r, acct)
}

// DecodeEnvelope unmarshals a response body into the standard envelope,
// decoding data into out when out is non-nil.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, out any) (status int, message string) {
	t.Helper()

	var env struct {
		Status  int             `json:"status"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response envelope: %v (body: %s)", err, rec.Body.String())
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("failed to decode envelope data: %v (data: %s)", err, env.Data)
		}
	}
	return env.Status, env.Message
}
