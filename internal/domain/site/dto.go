package site

import (
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	Name          string  `json:"name"`
	Address       *string `json:"address,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	RequestedByID string  `json:"requested_by_id"`
}

func (r CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if validator.IsEmpty(r.RequestedByID) {
		errs = append(errs, validator.ValidationError{Field: "requested_by_id", Message: "Requester is required"})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Must be a valid date (YYYY-MM-DD)"})
	}
	end, ok := validator.IsValidDate(r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Must be a valid date (YYYY-MM-DD)"})
	} else if end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "Must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveSiteRequest struct {
	ApprovedByID string `json:"approved_by_id"`
}

type ListFilter struct {
	Mine   bool
	UserID *string
	Status *SiteStatus
}
