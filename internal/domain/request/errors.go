package request

import "errors"

var (
	ErrRequestNotFound   = errors.New("Request not found")
	ErrRequestNotPending = errors.New("Request is not in PENDING status")
	ErrInvalidResponse   = errors.New("Response status must be APPROVED or REJECTED")
	ErrNotCraneOwner     = errors.New("Approver's organization does not own the target crane")
)
