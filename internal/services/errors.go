package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals the target record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden signals the actor is not allowed to perform the action.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyResolved signals a report resolution was attempted twice.
	// Resolution is one-way; a resolved report is terminal.
	ErrAlreadyResolved = errors.New("report already resolved")
)

// BlockedError is returned when the moderation engine rejects a submission
// outright. It is a deliberate decision, not a system fault: the content is
// never persisted and the reason is shown to the submitter.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("comment blocked: %s", e.Reason)
}
