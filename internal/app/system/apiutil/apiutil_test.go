package apiutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Authentication, http.StatusUnauthorized},
		{Authorization, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Dependency, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.kind.Status(); got != tt.want {
			t.Errorf("Status(%d) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestRespond_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, http.StatusCreated, map[string]string{"k": "v"}, "created")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body struct {
		Status  int               `json:"status"`
		Data    map[string]string `json:"data"`
		Message string            `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != http.StatusCreated || body.Message != "created" || body.Data["k"] != "v" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}

func TestWriteError_Typed(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, zap.NewNop(), E(Conflict, "organization with this name already exists in this college"))

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message != "organization with this name already exists in this college" {
		t.Errorf("message: got %q", body.Message)
	}
}

func TestWriteError_UntypedBecomesDependency(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, zap.NewNop(), errors.New("socket closed"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message == "socket closed" {
		t.Error("internal error detail leaked to client")
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("no documents")
	err := Wrap(NotFound, "college not found", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if AsError(err).Kind != NotFound {
		t.Error("expected NotFound kind preserved")
	}
}
