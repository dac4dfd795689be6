package models

import "errors"

// ErrNotFound is returned by writes that target a row that no longer
// exists. Reads where "no result" is a legitimate outcome return nil
// instead.
var ErrNotFound = errors.New("not found")

// ValidationError rejects an operation before any write happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
