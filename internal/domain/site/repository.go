package site

import "context"

// SiteRepository - interface for the sites table
type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	List(ctx context.Context, filter ListFilter) ([]Site, error)
	// UpdateStatus stamps the new status and, when non-nil, the approver
	// and approval time. The write only lands when the row still holds
	// `from`; otherwise ErrSiteNotFound is returned.
	UpdateStatus(ctx context.Context, id string, from, to SiteStatus, approvedBy *string) (Site, error)
}
