// Package service implements the CRUD layer: every operation loads a whole
// collection from the store, transforms it in memory, and writes the whole
// array back. There is exactly one writer by assumption; concurrent writers
// would clobber each other last-write-wins, matching the source system.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record ID does not exist in its collection.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a required-field failure. The operation aborts
// before any write, so a failed validation never leaves a partial update.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
