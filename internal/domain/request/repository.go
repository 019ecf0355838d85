package request

import "context"

// RequestRepository - interface for the requests table
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// ListForOwnerOrg returns requests whose target crane belongs to the org.
	ListForOwnerOrg(ctx context.Context, ownerOrgID string, filter OwnerListFilter) ([]Request, error)
	// UpdateResponse stamps the response while the request is still
	// PENDING; otherwise ErrRequestNotPending is returned.
	UpdateResponse(ctx context.Context, req Request) (Request, error)
}
