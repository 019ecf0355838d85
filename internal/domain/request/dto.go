package request

import (
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Type            RequestType `json:"type"`
	RequesterID     string      `json:"requester_id"`
	TargetEntityID  string      `json:"target_entity_id"`
	RelatedEntityID *string     `json:"related_entity_id,omitempty"`
	Notes           *string     `json:"notes,omitempty"`
}

func (r CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != RequestTypeCraneDeploy {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Unknown request type"})
	}
	if validator.IsEmpty(r.RequesterID) {
		errs = append(errs, validator.ValidationError{Field: "requester_id", Message: "Requester is required"})
	}
	if validator.IsEmpty(r.TargetEntityID) {
		errs = append(errs, validator.ValidationError{Field: "target_entity_id", Message: "Target entity is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RespondRequestRequest struct {
	Status     RequestStatus `json:"status"`
	ApproverID string        `json:"approver_id"`
	Notes      *string       `json:"notes,omitempty"`
}

func (r RespondRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != RequestStatusApproved && r.Status != RequestStatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Must be APPROVED or REJECTED"})
	}
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{Field: "approver_id", Message: "Approver is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OwnerListFilter narrows request listings for crane owners.
type OwnerListFilter struct {
	Type   *RequestType
	Status *RequestStatus
}
