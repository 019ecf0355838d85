package attendance

import (
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	DriverAssignmentID string  `json:"driver_assignment_id"`
	WorkDate           string  `json:"work_date"`
	CheckInAt          string  `json:"check_in_at"`
	CheckOutAt         *string `json:"check_out_at,omitempty"`
}

func (r RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DriverAssignmentID) {
		errs = append(errs, validator.ValidationError{Field: "driver_assignment_id", Message: "Driver assignment is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "Must be a valid date (YYYY-MM-DD)"})
	}
	checkIn, ok := validator.IsValidDateTime(r.CheckInAt)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "check_in_at", Message: "Must be a valid ISO8601 timestamp"})
	}
	if r.CheckOutAt != nil {
		checkOut, ok := validator.IsValidDateTime(*r.CheckOutAt)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_at", Message: "Must be a valid ISO8601 timestamp"})
		} else if checkOut.Before(checkIn) {
			errs = append(errs, validator.ValidationError{Field: "check_out_at", Message: "Must not be before check_in_at"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	DriverAssignmentID string `json:"driver_assignment_id"`
	WorkDate           string `json:"work_date"`
	CheckOutAt         string `json:"check_out_at"`
}
