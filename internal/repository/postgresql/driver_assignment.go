package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/assignment"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type driverAssignmentRepository struct {
	db *database.DB
}

func NewDriverAssignmentRepository(db *database.DB) assignment.DriverAssignmentRepository {
	return &driverAssignmentRepository{db: db}
}

// Create implements assignment.DriverAssignmentRepository.
func (r *driverAssignmentRepository) Create(ctx context.Context, a assignment.DriverAssignment) (assignment.DriverAssignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = assignment.AssignmentStatusAssigned
	}

	query := `
		INSERT INTO driver_assignments (id, site_crane_id, driver_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.SiteCraneID, a.DriverID, a.StartDate, a.EndDate, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return assignment.DriverAssignment{}, fmt.Errorf("failed to create driver assignment: %w", err)
	}

	return a, nil
}

// GetByID implements assignment.DriverAssignmentRepository.
func (r *driverAssignmentRepository) GetByID(ctx context.Context, id string) (assignment.DriverAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_crane_id, driver_id, start_date, end_date, status,
			   created_at, updated_at
		FROM driver_assignments
		WHERE id = $1
	`

	var a assignment.DriverAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.SiteCraneID, &a.DriverID, &a.StartDate, &a.EndDate, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.DriverAssignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.DriverAssignment{}, fmt.Errorf("failed to get driver assignment by ID: %w", err)
	}

	return a, nil
}

// ListBySiteCrane implements assignment.DriverAssignmentRepository.
func (r *driverAssignmentRepository) ListBySiteCrane(ctx context.Context, siteCraneID string) ([]assignment.DriverAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_crane_id, driver_id, start_date, end_date, status,
			   created_at, updated_at
		FROM driver_assignments
		WHERE site_crane_id = $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, siteCraneID)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.DriverAssignment
	for rows.Next() {
		var a assignment.DriverAssignment
		err := rows.Scan(
			&a.ID, &a.SiteCraneID, &a.DriverID, &a.StartDate, &a.EndDate, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// UpdateStatus implements assignment.DriverAssignmentRepository.
func (r *driverAssignmentRepository) UpdateStatus(ctx context.Context, id string, status assignment.AssignmentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE driver_assignments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update driver assignment status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

// LockDriver implements assignment.DriverAssignmentRepository.
// Transaction-scoped advisory lock keyed on the driver id; see LockCrane.
func (r *driverAssignmentRepository) LockDriver(ctx context.Context, driverID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended('driver:' || $1, 0))`, driverID); err != nil {
		return fmt.Errorf("failed to lock driver %s: %w", driverID, err)
	}

	return nil
}

// FindOverlapping implements assignment.DriverAssignmentRepository.
func (r *driverAssignmentRepository) FindOverlapping(ctx context.Context, driverID string, interval assignment.Interval) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM driver_assignments
		WHERE driver_id = $1
		  AND status = $2
		  AND start_date <= COALESCE($4::date, 'infinity'::date)
		  AND $3::date <= COALESCE(end_date, 'infinity'::date)
		ORDER BY start_date
		LIMIT 1
		FOR UPDATE
	`

	var blockingID string
	err := q.QueryRow(ctx, query, driverID, assignment.AssignmentStatusAssigned, interval.Start, interval.End).Scan(&blockingID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to check overlapping driver assignments: %w", err)
	}

	return blockingID, nil
}
