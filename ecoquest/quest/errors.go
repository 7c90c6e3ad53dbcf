package quest

import (
	"errors"
	"fmt"
)

// Error taxonomy for the quest engine. Every error here is recoverable at
// the request boundary; the API layer maps them onto status codes.

// ValidationError reports malformed input with field-level detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an absent quest or attempt.
type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", e.Entity, e.ID)
}

// ForbiddenError reports an ownership violation on an attempt.
type ForbiddenError struct {
	Entity string
	ID     interface{}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s with ID %v is owned by another user", e.Entity, e.ID)
}

// ConflictError reports a duplicate start or duplicate quiz session.
type ConflictError struct {
	Entity string
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Detail)
}

// ExpiredError reports a quest whose deadline has passed.
type ExpiredError struct {
	QuestID int64
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("quest %d is past its deadline", e.QuestID)
}

// PeriodeMismatchError reports an attempt whose period token no longer
// matches the current daily or weekly bucket.
type PeriodeMismatchError struct {
	Periode  string
	Category string
}

func (e *PeriodeMismatchError) Error() string {
	return fmt.Sprintf("periode %q is not the current %s bucket", e.Periode, e.Category)
}

// InvalidStateError reports a transition on a terminal (completed) attempt.
type InvalidStateError struct {
	AttemptID int64
	State     State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("attempt %d is %s and accepts no further transitions", e.AttemptID, e.State)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
