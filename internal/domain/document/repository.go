package document

import "context"

// DocumentRequestRepository - interface for the driver_document_requests table
type DocumentRequestRepository interface {
	Create(ctx context.Context, req DriverDocumentRequest) (DriverDocumentRequest, error)
	GetByID(ctx context.Context, id string) (DriverDocumentRequest, error)
	ListByDriver(ctx context.Context, driverID string) ([]DriverDocumentRequest, error)
}

// DocumentItemRepository - interface for the driver_document_items table
type DocumentItemRepository interface {
	Create(ctx context.Context, item DriverDocumentItem) (DriverDocumentItem, error)
	GetByID(ctx context.Context, id string) (DriverDocumentItem, error)
	ListByRequest(ctx context.Context, requestID string) ([]DriverDocumentItem, error)
	// UpdateReview stamps the terminal review status, reviewer, and time.
	// The write only lands while the item is still SUBMITTED; otherwise
	// ErrItemNotSubmitted is returned.
	UpdateReview(ctx context.Context, item DriverDocumentItem) (DriverDocumentItem, error)
}
