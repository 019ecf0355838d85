package document

import (
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
)

type CreateDocumentRequestRequest struct {
	SiteID        string  `json:"site_id"`
	DriverID      string  `json:"driver_id"`
	RequestedByID string  `json:"requested_by_id"`
	DueDate       *string `json:"due_date,omitempty"`
}

func (r CreateDocumentRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "Site is required"})
	}
	if validator.IsEmpty(r.DriverID) {
		errs = append(errs, validator.ValidationError{Field: "driver_id", Message: "Driver is required"})
	}
	if validator.IsEmpty(r.RequestedByID) {
		errs = append(errs, validator.ValidationError{Field: "requested_by_id", Message: "Requester is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "Must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitItemRequest struct {
	RequestID string `json:"request_id"`
	DocType   string `json:"doc_type"`
	FileURL   string `json:"file_url"`
}

func (r SubmitItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "Request is required"})
	}
	if validator.IsEmpty(r.DocType) {
		errs = append(errs, validator.ValidationError{Field: "doc_type", Message: "Document type is required"})
	}
	if validator.IsEmpty(r.FileURL) {
		errs = append(errs, validator.ValidationError{Field: "file_url", Message: "File URL is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewItemRequest struct {
	ItemID     string `json:"item_id"`
	ReviewerID string `json:"reviewer_id"`
	Approve    bool   `json:"approve"`
}
