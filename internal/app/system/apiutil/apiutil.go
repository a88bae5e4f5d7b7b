// Package apiutil provides the JSON response envelope and the typed error
// taxonomy used by every API handler.
//
// All responses share one shape so the frontend can handle them uniformly:
//
//	{ "status": 200, "data": {...}, "message": "..." }
package apiutil

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// envelope is the wire format for every API response.
type envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// Respond writes a JSON envelope with the given status code.
func Respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Status: status, Data: data, Message: message})
}

// WriteError maps err onto the taxonomy and writes the envelope. Typed
// errors keep their message; anything else is treated as a dependency
// failure with a generic message, and the underlying error is logged.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	e := AsError(err)
	if e.Kind == Dependency && logger != nil {
		logger.Error("dependency failure", zap.Error(err))
	}
	Respond(w, e.Kind.Status(), nil, e.Message)
}
