package errors

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/utils/pagination"
)

// Domain errors surfaced by the service layer. Handlers translate these
// to HTTP statuses via Status; everything else becomes a 500.
var (
	// ErrSwipeExists is returned when a swipe already exists for the
	// ordered (actor, target) pair. Swipes are immutable, so this is a
	// conflict rather than an overwrite.
	ErrSwipeExists = errors.New("swipe already recorded for this pair")

	// ErrUnauthorized is returned when a user is not a participant of
	// the match they are trying to access.
	ErrUnauthorized = errors.New("user is not a participant of this match")

	// ErrInactiveMatch is returned when sending into an unmatched
	// conversation.
	ErrInactiveMatch = errors.New("match is no longer active")

	// ErrNotFound is returned when a referenced user or match does not
	// exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidArgument is returned for malformed or self-referential
	// input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Map converts repo/infra errors into domain errors. Keeps the service
// layer clean by centralizing error translation.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound

	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrSwipeExists

	case errors.Is(err, pagination.ErrInvalidToken):
		return ErrInvalidArgument

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return err

	default:
		return err
	}
}

// Status maps a domain error to its HTTP status code.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSwipeExists), errors.Is(err, ErrInactiveMatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code maps a domain error to a stable machine-readable error code.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrSwipeExists):
		return "SWIPE_CONFLICT"
	case errors.Is(err, ErrInactiveMatch):
		return "INACTIVE_MATCH"
	default:
		return "INTERNAL_ERROR"
	}
}
