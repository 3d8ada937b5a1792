package api

import (
	"errors"
	"fmt"

	"github.com/greyhelm/sheetsync/pkg/api"
)

var (
	// ErrNotFound means the server has no such entity.
	ErrNotFound = errors.New("entity not found on server")

	// ErrUnauthorized means the access token was missing, expired or revoked.
	ErrUnauthorized = errors.New("authentication required")
)

// ConflictError is returned when the server rejects a conditional write
// because its stored version is newer than the client's baseline. Current
// carries the server's version so the caller can record both sides.
type ConflictError struct {
	Message string
	Current api.EntityPayload
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("conflict: %s", e.Message)
	}
	return "conflict: entity modified on server"
}
