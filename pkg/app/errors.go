package app

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an item id does not exist.
	ErrNotFound = errors.New("app: item not found")
	// ErrUnread is wrapped by the PersistenceError of a save held back
	// because the stored album could not be read.
	ErrUnread = errors.New("stored album could not be read, not overwriting it")
)

// ValidationError reports user input the album refuses: a blank or duplicate
// section name, a blank or unparseable URL, an unknown section.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ImportError reports a document that could not be imported. The album is
// left untouched.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("could not import album: %v", e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed read or write of the backing store. It is
// not fatal: the in-memory album keeps the change.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("album %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}
