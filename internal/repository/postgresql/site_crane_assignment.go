package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/assignment"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type siteCraneAssignmentRepository struct {
	db *database.DB
}

func NewSiteCraneAssignmentRepository(db *database.DB) assignment.SiteCraneAssignmentRepository {
	return &siteCraneAssignmentRepository{db: db}
}

// Create implements assignment.SiteCraneAssignmentRepository.
func (r *siteCraneAssignmentRepository) Create(ctx context.Context, a assignment.SiteCraneAssignment) (assignment.SiteCraneAssignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = assignment.AssignmentStatusAssigned
	}

	query := `
		INSERT INTO site_crane_assignments (id, site_id, crane_id, assigned_by, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.SiteID, a.CraneID, a.AssignedBy, a.StartDate, a.EndDate, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return assignment.SiteCraneAssignment{}, fmt.Errorf("failed to create site-crane assignment: %w", err)
	}

	return a, nil
}

// GetByID implements assignment.SiteCraneAssignmentRepository.
func (r *siteCraneAssignmentRepository) GetByID(ctx context.Context, id string) (assignment.SiteCraneAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, crane_id, assigned_by, start_date, end_date, status,
			   created_at, updated_at
		FROM site_crane_assignments
		WHERE id = $1
	`

	var a assignment.SiteCraneAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.SiteID, &a.CraneID, &a.AssignedBy, &a.StartDate, &a.EndDate, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.SiteCraneAssignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.SiteCraneAssignment{}, fmt.Errorf("failed to get site-crane assignment by ID: %w", err)
	}

	return a, nil
}

// ListBySite implements assignment.SiteCraneAssignmentRepository.
func (r *siteCraneAssignmentRepository) ListBySite(ctx context.Context, siteID string) ([]assignment.SiteCraneAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, crane_id, assigned_by, start_date, end_date, status,
			   created_at, updated_at
		FROM site_crane_assignments
		WHERE site_id = $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query site-crane assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.SiteCraneAssignment
	for rows.Next() {
		var a assignment.SiteCraneAssignment
		err := rows.Scan(
			&a.ID, &a.SiteID, &a.CraneID, &a.AssignedBy, &a.StartDate, &a.EndDate, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site-crane assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// UpdateStatus implements assignment.SiteCraneAssignmentRepository.
func (r *siteCraneAssignmentRepository) UpdateStatus(ctx context.Context, id string, status assignment.AssignmentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE site_crane_assignments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update site-crane assignment status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// LockCrane implements assignment.SiteCraneAssignmentRepository.
// Takes a transaction-scoped advisory lock keyed on the crane id, so two
// transactions racing to assign the same crane serialize even when neither
// sees a conflicting row yet. Released automatically at commit/rollback.
func (r *siteCraneAssignmentRepository) LockCrane(ctx context.Context, craneID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('crane:' || $1, 0))`, craneID); err != nil {
		return fmt.Errorf("failed to lock crane %s: %w", craneID, err)
	}

	return nil
}

// FindOverlapping implements assignment.SiteCraneAssignmentRepository.
// Inclusive-boundary overlap; a NULL end date extends to +infinity on both
// sides of the comparison. Only ASSIGNED rows block, and any match stays
// locked until the enclosing transaction ends.
func (r *siteCraneAssignmentRepository) FindOverlapping(ctx context.Context, craneID string, interval assignment.Interval) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM site_crane_assignments
		WHERE crane_id = $1
		  AND status = $2
		  AND start_date <= COALESCE($4::date, 'infinity'::date)
		  AND $3::date <= COALESCE(end_date, 'infinity'::date)
		ORDER BY start_date
		LIMIT 1
		FOR UPDATE
	`

	var blockingID string
	err := q.QueryRow(ctx, query, craneID, assignment.AssignmentStatusAssigned, interval.Start, interval.End).Scan(&blockingID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to check overlapping crane assignments: %w", err)
	}

	return blockingID, nil
}
