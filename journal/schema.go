package journal

import (
	"errors"
	"time"
)

// Schema describes how the engine reads and writes the handful of fields it
// cares about on a concrete record type. Concrete apps keep their own record
// structs (diary entry, mood entry, victory, garden task) and hand the engine
// a Schema instead of implementing an interface, so records stay plain
// JSON-taggable values.
//
// ID, Timestamp and Stamp are required. The remaining accessors are optional;
// a nil accessor means the record kind does not have that dimension and any
// query constraint on it matches nothing.
type Schema[T any] struct {
	// ID returns the record's opaque identifier, "" for a record that has
	// not been added yet.
	ID func(T) string

	// Timestamp returns the instant the record belongs to (its primary
	// date). The engine collapses it onto a calendar day with the
	// collection's location.
	Timestamp func(T) time.Time

	// Stamp returns a copy of the record with identity and bookkeeping
	// timestamps set. Called on Add (createdAt == updatedAt) and on
	// Update/Toggle (createdAt preserved, id unchanged).
	Stamp func(rec T, id string, createdAt, updatedAt time.Time) T

	// CreatedAt reports the record's creation instant; required so Update
	// can preserve it.
	CreatedAt func(T) time.Time

	// Text returns the record's searchable text (title plus note,
	// typically). Optional.
	Text func(T) string

	// Labels returns the record's category/tags. A single-category kind
	// returns a one-element slice. Optional.
	Labels func(T) []string

	// Status returns the record's lifecycle state, "" when unset. Optional.
	Status func(T) string

	// Favorite reports the record's favorite flag. Optional.
	Favorite func(T) bool
}

var errIncompleteSchema = errors.New("journal: schema requires ID, Timestamp, CreatedAt and Stamp")

func (s Schema[T]) validate() error {
	if s.ID == nil || s.Timestamp == nil || s.CreatedAt == nil || s.Stamp == nil {
		return errIncompleteSchema
	}
	return nil
}

// day collapses a record onto its calendar day in loc.
func (s Schema[T]) day(rec T, loc *time.Location) Date {
	return DateOf(s.Timestamp(rec), loc)
}
