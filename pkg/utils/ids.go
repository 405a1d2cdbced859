package utils

import "github.com/google/uuid"

var newTimeOrderedID = uuid.NewV7

// NewID returns a time-ordered id for a new row, so primary key order
// roughly follows insertion order. A random v4 id is returned if the clock
// source fails.
func NewID() uuid.UUID {
	id, err := newTimeOrderedID()
	if err != nil {
		return uuid.New()
	}
	return id
}
