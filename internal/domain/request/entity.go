package request

import "time"

type RequestType string

const (
	RequestTypeCraneDeploy RequestType = "CRANE_DEPLOY"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// Request is a generic typed workflow: PENDING -> APPROVED | REJECTED.
// For CRANE_DEPLOY the target entity is the crane, the related entity the site.
type Request struct {
	ID              string        `json:"id"`
	Type            RequestType   `json:"type"`
	Status          RequestStatus `json:"status"`
	RequesterID     string        `json:"requester_id"`
	ApproverID      *string       `json:"approver_id,omitempty"`
	TargetEntityID  string        `json:"target_entity_id"`
	RelatedEntityID *string       `json:"related_entity_id,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
	RequestedAt     time.Time     `json:"requested_at"`
	RespondedAt     *time.Time    `json:"responded_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsPending reports whether the request still accepts a response.
func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}
