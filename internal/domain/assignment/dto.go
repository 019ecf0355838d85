package assignment

import (
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
)

type AssignCraneRequest struct {
	SiteID          string  `json:"site_id"`
	CraneID         string  `json:"crane_id"`
	SafetyManagerID string  `json:"safety_manager_id"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
}

func (r AssignCraneRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "Site is required"})
	}
	if validator.IsEmpty(r.CraneID) {
		errs = append(errs, validator.ValidationError{Field: "crane_id", Message: "Crane is required"})
	}
	if validator.IsEmpty(r.SafetyManagerID) {
		errs = append(errs, validator.ValidationError{Field: "safety_manager_id", Message: "Safety manager is required"})
	}
	errs = append(errs, validateDateRange(r.StartDate, r.EndDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignDriverRequest struct {
	SiteCraneID string  `json:"site_crane_id"`
	DriverID    string  `json:"driver_id"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
}

func (r AssignDriverRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteCraneID) {
		errs = append(errs, validator.ValidationError{Field: "site_crane_id", Message: "Parent assignment is required"})
	}
	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "Driver is required"})
	}
	errs = append(errs, validateDateRange(r.StartDate, r.EndDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDateRange(start string, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	startDate, ok := validator.IsValidDate(start)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Must be a valid date (YYYY-MM-DD)"})
	}
	if end != nil {
		endDate, ok := validator.IsValidDate(*end)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Must be a valid date (YYYY-MM-DD)"})
		} else if endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Must not be before start_date"})
		}
	}
	return errs
}

type ReleaseRequest struct {
	SafetyManagerID string `json:"safety_manager_id"`
}
