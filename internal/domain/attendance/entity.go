package attendance

import "time"

// DriverAttendance is one driver's check-in/check-out pair for one work day.
// At most one row exists per (driver_assignment_id, work_date).
type DriverAttendance struct {
	ID                 string     `json:"id"`
	DriverAssignmentID string     `json:"driver_assignment_id"`
	WorkDate           time.Time  `json:"work_date"`
	CheckInAt          time.Time  `json:"check_in_at"`
	CheckOutAt         *time.Time `json:"check_out_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
