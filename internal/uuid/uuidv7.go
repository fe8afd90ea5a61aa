// Package uuid generates time-ordered identifiers for database records.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. UUIDv7 is time-ordered and monotonic within
// a process, so sorting primary keys ascending reproduces insertion order.
// The invoice aggregation relies on this for a stable tiebreak between
// transactions dated the same day.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// crypto/rand failure; fall back to v4
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
