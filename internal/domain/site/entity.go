package site

import "time"

type SiteStatus string

const (
	SiteStatusPendingApproval SiteStatus = "PENDING_APPROVAL"
	SiteStatusActive          SiteStatus = "ACTIVE"
	SiteStatusRejected        SiteStatus = "REJECTED"
	SiteStatusCompleted       SiteStatus = "COMPLETED"
)

type Site struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Address       *string    `json:"address,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	Status        SiteStatus `json:"status"`
	RequestedByID string     `json:"requested_by_id"`
	ApprovedByID  *string    `json:"approved_by_id,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CanTransitionTo reports whether the status machine permits the move.
// PENDING_APPROVAL -> ACTIVE | REJECTED, ACTIVE -> COMPLETED.
func (s *Site) CanTransitionTo(target SiteStatus) bool {
	switch s.Status {
	case SiteStatusPendingApproval:
		return target == SiteStatusActive || target == SiteStatusRejected
	case SiteStatusActive:
		return target == SiteStatusCompleted
	default:
		return false
	}
}
