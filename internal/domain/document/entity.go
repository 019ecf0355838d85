package document

import "time"

type DocItemStatus string

const (
	DocItemStatusPending   DocItemStatus = "PENDING"
	DocItemStatusSubmitted DocItemStatus = "SUBMITTED"
	DocItemStatusApproved  DocItemStatus = "APPROVED"
	DocItemStatusRejected  DocItemStatus = "REJECTED"
)

// DriverDocumentRequest asks one driver for compliance documents on one site.
type DriverDocumentRequest struct {
	ID            string     `json:"id"`
	SiteID        string     `json:"site_id"`
	DriverID      string     `json:"driver_id"`
	RequestedByID string     `json:"requested_by_id"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DriverDocumentItem is one document inside a request.
// PENDING -> SUBMITTED -> APPROVED | REJECTED.
type DriverDocumentItem struct {
	ID          string        `json:"id"`
	RequestID   string        `json:"request_id"`
	DocType     string        `json:"doc_type"`
	FileURL     *string       `json:"file_url,omitempty"`
	Status      DocItemStatus `json:"status"`
	ReviewerID  *string       `json:"reviewer_id,omitempty"`
	SubmittedAt *time.Time    `json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsReviewable reports whether the item may be approved or rejected.
func (i *DriverDocumentItem) IsReviewable() bool {
	return i.Status == DocItemStatusSubmitted
}
