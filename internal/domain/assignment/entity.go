package assignment

import "time"

type AssignmentStatus string

const (
	AssignmentStatusAssigned AssignmentStatus = "ASSIGNED"
	AssignmentStatusReleased AssignmentStatus = "RELEASED"
)

// ResourceKind names the resource an interval claims exclusively.
type ResourceKind string

const (
	ResourceKindCrane  ResourceKind = "CRANE"
	ResourceKindDriver ResourceKind = "DRIVER"
)

// SiteCraneAssignment is a time-bounded claim of a crane for a site.
// A nil EndDate means open-ended; for overlap math it extends to +infinity.
type SiteCraneAssignment struct {
	ID         string           `json:"id"`
	SiteID     string           `json:"site_id"`
	CraneID    string           `json:"crane_id"`
	AssignedBy string           `json:"assigned_by"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    *time.Time       `json:"end_date,omitempty"`
	Status     AssignmentStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// DriverAssignment is a time-bounded claim of a driver for a site-crane
// assignment. Its interval must nest inside the parent's interval.
type DriverAssignment struct {
	ID          string           `json:"id"`
	SiteCraneID string           `json:"site_crane_id"`
	DriverID    string           `json:"driver_id"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	Status      AssignmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Interval is a day-granularity [start, end] range, end nil = open-ended.
type Interval struct {
	Start time.Time
	End   *time.Time
}

// Overlaps reports whether two intervals share at least one day.
// Boundaries are inclusive: an assignment ending on day D conflicts with
// one starting on day D.
func (i Interval) Overlaps(other Interval) bool {
	if other.End != nil && other.End.Before(i.Start) {
		return false
	}
	if i.End != nil && i.End.Before(other.Start) {
		return false
	}
	return true
}

// Contains reports whether other fits entirely inside i.
func (i Interval) Contains(other Interval) bool {
	if other.Start.Before(i.Start) {
		return false
	}
	if i.End == nil {
		return true
	}
	if other.End == nil {
		return false
	}
	return !other.End.After(*i.End)
}
