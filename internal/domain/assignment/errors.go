package assignment

import (
	"errors"
	"fmt"
)

var (
	ErrAssignmentNotFound = errors.New("Assignment not found")
	ErrAssignmentOverlap  = errors.New("Resource is already assigned during the requested period")
	ErrNotAssigned        = errors.New("Assignment is not in ASSIGNED status")
	ErrIntervalNotNested  = errors.New("Interval must fall within the parent assignment's interval")
	ErrInvalidDateRange   = errors.New("end_date must not be before start_date")
)

// OverlapError carries the id of the assignment blocking the candidate
// interval. errors.Is(err, ErrAssignmentOverlap) matches it.
type OverlapError struct {
	ResourceKind ResourceKind
	ResourceID   string
	BlockingID   string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s %s is already assigned during the requested period (blocking assignment %s)",
		e.ResourceKind, e.ResourceID, e.BlockingID)
}

func (e *OverlapError) Unwrap() error {
	return ErrAssignmentOverlap
}
