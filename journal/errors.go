package journal

import (
	"errors"
	"fmt"
)

// DuplicateIDError reports an Add with an id already present in the collection.
type DuplicateIDError struct {
	ID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("record %s already exists", e.ID)
}

// IsDuplicateID checks if an error is a DuplicateIDError (including wrapped errors).
func IsDuplicateID(err error) bool {
	var de DuplicateIDError
	return errors.As(err, &de)
}

// NotFoundError reports an Update, Delete or Toggle against an absent id.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("record %s not found", e.ID)
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// DateTakenError reports an Add that collides on the calendar day while the
// collection runs under RejectSameDay.
type DateTakenError struct {
	Day Date
}

func (e DateTakenError) Error() string {
	return fmt.Sprintf("a record already exists for %s", e.Day)
}

// IsDateTaken checks if an error is a DateTakenError.
func IsDateTaken(err error) bool {
	var de DateTakenError
	return errors.As(err, &de)
}

// DecodeError reports malformed persisted bytes. The repository absorbs it on
// Load and degrades to an empty collection; it only surfaces through the
// codec's own API.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("decode records: %v", e.Err)
}

func (e DecodeError) Unwrap() error { return e.Err }

// IsDecodeError checks if an error is a DecodeError.
func IsDecodeError(err error) bool {
	var de DecodeError
	return errors.As(err, &de)
}

// PersistError reports a failed key-value store write. The in-memory mutation
// that triggered the write is not rolled back; the caller sees current state,
// a later session may see older state.
type PersistError struct {
	Key string
	Err error
}

func (e PersistError) Error() string {
	return fmt.Sprintf("persist collection %s: %v", e.Key, e.Err)
}

func (e PersistError) Unwrap() error { return e.Err }

// IsPersistError checks if an error is a PersistError.
func IsPersistError(err error) bool {
	var pe PersistError
	return errors.As(err, &pe)
}
