package scheduler

import (
	"errors"
	"fmt"
)

// Business-rule errors surfaced to callers. Anything not listed here is a
// persistence failure and should be treated as internal.
var (
	ErrVolunteerNotFound   = errors.New("volunteer not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrEventNotFound       = errors.New("event not found")

	// Admission rejections
	ErrTaskFull         = errors.New("task is full")
	ErrAlreadyApplied   = errors.New("already applied to this task")
	ErrScheduleConflict = errors.New("you have another shift at this time")

	// Moderation
	ErrNotPending = errors.New("application is not pending")

	// Ownership violations
	ErrNotAuthorized = errors.New("not authorized")

	// Certificate eligibility
	ErrNotCompleted = errors.New("task not completed or not verified yet")

	// Task creation
	ErrInvalidTimeWindow = errors.New("task end time must be after start time")
)

// OutOfRangeError is returned by CheckIn when the reported location is
// outside the geofence. It carries the measured distance so callers can
// tell the volunteer how far off they are.
type OutOfRangeError struct {
	DistanceMeters float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("check-in failed: you are %.0fm away from the venue", e.DistanceMeters)
}
