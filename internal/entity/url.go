// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a stored URL record, along
// with its associated metadata, and any relevant error definitions.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrShortCodeExists is returned when attempting to attach a short code that is already taken.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")
)

// URL represents a stored URL record.
//
// Records are created in two phases: the row is inserted with an empty short
// code, the code is derived from the assigned ID and then attached. Between
// the two writes a record legitimately exists with ShortCode == "".
type URL struct {
	ID          int64     // ID is the unique identifier assigned by the database; the short code is derived from it.
	OriginalURL string    // OriginalURL is the full URL that the short code resolves to, stored trimmed.
	ShortCode   string    // ShortCode is the base62 code derived from ID; empty until attached.
	CreatedAt   time.Time // CreatedAt is the timestamp when the record was created, reserved for future expiry support.
}
