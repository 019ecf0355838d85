package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the driver_attendance table
type AttendanceRepository interface {
	// Create inserts a new attendance row. The unique
	// (driver_assignment_id, work_date) constraint is surfaced as a
	// DuplicateDayError.
	Create(ctx context.Context, att DriverAttendance) (DriverAttendance, error)
	GetByID(ctx context.Context, id string) (DriverAttendance, error)
	GetByAssignmentAndDate(ctx context.Context, driverAssignmentID string, workDate time.Time) (DriverAttendance, error)
	ListByAssignment(ctx context.Context, driverAssignmentID string) ([]DriverAttendance, error)
	SetCheckOut(ctx context.Context, id string, checkOutAt time.Time) (DriverAttendance, error)
}
