package models

import (
	"errors"
	"fmt"
)

// InputError is a user-correctable mistake (inverted date range, N out of
// bounds). Controllers surface it as a 400 and leave prior state alone.
type InputError struct {
	Reason string
}

func NewInputError(format string, args ...any) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InputError) Error() string { return e.Reason }

func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// DataIntegrityError means a backing file is missing or corrupt. The data
// is static and local, so it is never retried.
type DataIntegrityError struct {
	Op  string
	Err error
}

func NewDataIntegrityError(op string, err error) *DataIntegrityError {
	return &DataIntegrityError{Op: op, Err: err}
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity: %s: %v", e.Op, e.Err)
}

func (e *DataIntegrityError) Unwrap() error { return e.Err }

func IsDataIntegrityError(err error) bool {
	var de *DataIntegrityError
	return errors.As(err, &de)
}
