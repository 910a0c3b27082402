package todo

import (
	"errors"
	"fmt"
)

// Sentinel errors for todo operations.
var (
	// ErrNotFound is returned when the requested task does not exist.
	// A simple miss: recoverable, never conflated with decode failures.
	ErrNotFound = errors.New("task not found")

	// ErrTitleRequired is returned when a title is empty after trimming.
	ErrTitleRequired = errors.New("title must not be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLen after trimming.
	ErrTitleTooLong = fmt.Errorf("title must be at most %d characters", MaxTitleLen)

	// ErrTitleNull is returned when a patch sets title to an explicit null.
	ErrTitleNull = errors.New("title cannot be null")

	// ErrDescriptionTooLong is returned when a description exceeds
	// MaxDescriptionLen after trimming.
	ErrDescriptionTooLong = fmt.Errorf("description must be at most %d characters", MaxDescriptionLen)

	// ErrCompletedNull is returned when a patch sets isCompleted to an
	// explicit null.
	ErrCompletedNull = errors.New("isCompleted cannot be null")
)

// DecodeError reports a stored entry that cannot be decoded into a valid
// task. This is a data-integrity failure, distinct from ErrNotFound.
type DecodeError struct {
	ID  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("stored task %s cannot be decoded: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is one of the input validation
// sentinels, letting transport adapters map it to a client error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrTitleNull) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrCompletedNull)
}
