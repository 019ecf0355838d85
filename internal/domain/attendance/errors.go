package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrAttendanceNotFound  = errors.New("Attendance record not found")
	ErrDuplicateDay        = errors.New("Attendance already recorded for this day")
	ErrCheckOutBeforeIn    = errors.New("check_out_at must not be before check_in_at")
	ErrOutsideAssignment   = errors.New("work_date falls outside the driver assignment's interval")
	ErrAlreadyCheckedOut   = errors.New("Attendance is already checked out")
	ErrNoOpenAttendanceDay = errors.New("No open attendance for this day")
)

// DuplicateDayError carries the id of the existing attendance row.
// errors.Is(err, ErrDuplicateDay) matches it.
type DuplicateDayError struct {
	ExistingID string
}

func (e *DuplicateDayError) Error() string {
	return fmt.Sprintf("attendance already recorded for this day (existing record %s)", e.ExistingID)
}

func (e *DuplicateDayError) Unwrap() error {
	return ErrDuplicateDay
}
