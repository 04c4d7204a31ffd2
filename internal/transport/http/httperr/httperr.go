package httperr

import (
	"encoding/json"
	"net/http"

	svcErr "github.com/kingRayhan/dating-app/internal/errors"
)

// APIError is the JSON error payload every endpoint returns on failure.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Write serializes any payload with the given status.
func Write(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps a domain error to its HTTP status and error code.
func WriteError(w http.ResponseWriter, err error) {
	status := svcErr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// don't leak internals
		msg = "internal error"
	}
	Write(w, status, APIError{Code: svcErr.Code(err), Message: msg})
}

// WriteBadRequest reports a transport-level validation failure.
func WriteBadRequest(w http.ResponseWriter, message string) {
	Write(w, http.StatusBadRequest, APIError{Code: "VALIDATION_ERROR", Message: message})
}
