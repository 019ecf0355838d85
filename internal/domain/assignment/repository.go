package assignment

import "context"

// SiteCraneAssignmentRepository - interface for the site_crane_assignments table
type SiteCraneAssignmentRepository interface {
	Create(ctx context.Context, a SiteCraneAssignment) (SiteCraneAssignment, error)
	GetByID(ctx context.Context, id string) (SiteCraneAssignment, error)
	ListBySite(ctx context.Context, siteID string) ([]SiteCraneAssignment, error)
	UpdateStatus(ctx context.Context, id string, status AssignmentStatus) error
	// LockCrane serializes concurrent assignment attempts for one crane
	// within the calling transaction.
	LockCrane(ctx context.Context, craneID string) error
	// FindOverlapping returns the id of an ASSIGNED assignment for the crane
	// whose interval overlaps the candidate, or "" when none does. Matching
	// rows are locked until the transaction ends.
	FindOverlapping(ctx context.Context, craneID string, interval Interval) (string, error)
}

// DriverAssignmentRepository - interface for the driver_assignments table
type DriverAssignmentRepository interface {
	Create(ctx context.Context, a DriverAssignment) (DriverAssignment, error)
	GetByID(ctx context.Context, id string) (DriverAssignment, error)
	ListBySiteCrane(ctx context.Context, siteCraneID string) ([]DriverAssignment, error)
	UpdateStatus(ctx context.Context, id string, status AssignmentStatus) error
	LockDriver(ctx context.Context, driverID string) error
	FindOverlapping(ctx context.Context, driverID string, interval Interval) (string, error)
}
