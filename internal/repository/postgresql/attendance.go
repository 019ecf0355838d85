package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/attendance"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.DriverAttendance) (attendance.DriverAttendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO driver_attendance (id, driver_assignment_id, work_date, check_in_at, check_out_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.DriverAssignmentID, att.WorkDate, att.CheckInAt, att.CheckOutAt,
	).Scan(&att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			existing, lookupErr := r.GetByAssignmentAndDate(ctx, att.DriverAssignmentID, att.WorkDate)
			if lookupErr != nil {
				return attendance.DriverAttendance{}, &attendance.DuplicateDayError{}
			}
			return attendance.DriverAttendance{}, &attendance.DuplicateDayError{ExistingID: existing.ID}
		}
		return attendance.DriverAttendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.DriverAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, driver_assignment_id, work_date, check_in_at, check_out_at,
			   created_at, updated_at
		FROM driver_attendance
		WHERE id = $1
	`

	var att attendance.DriverAttendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.DriverAssignmentID, &att.WorkDate, &att.CheckInAt, &att.CheckOutAt,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.DriverAttendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.DriverAttendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByAssignmentAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByAssignmentAndDate(ctx context.Context, driverAssignmentID string, workDate time.Time) (attendance.DriverAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, driver_assignment_id, work_date, check_in_at, check_out_at,
			   created_at, updated_at
		FROM driver_attendance
		WHERE driver_assignment_id = $1
		  AND work_date = $2
	`

	var att attendance.DriverAttendance
	err := q.QueryRow(ctx, query, driverAssignmentID, workDate).Scan(
		&att.ID, &att.DriverAssignmentID, &att.WorkDate, &att.CheckInAt, &att.CheckOutAt,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.DriverAttendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.DriverAttendance{}, fmt.Errorf("failed to get attendance by assignment and date: %w", err)
	}

	return att, nil
}

// ListByAssignment implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByAssignment(ctx context.Context, driverAssignmentID string) ([]attendance.DriverAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, driver_assignment_id, work_date, check_in_at, check_out_at,
			   created_at, updated_at
		FROM driver_attendance
		WHERE driver_assignment_id = $1
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, driverAssignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.DriverAttendance
	for rows.Next() {
		var att attendance.DriverAttendance
		err := rows.Scan(
			&att.ID, &att.DriverAssignmentID, &att.WorkDate, &att.CheckInAt, &att.CheckOutAt,
			&att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOutAt time.Time) (attendance.DriverAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE driver_attendance
		SET check_out_at = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, driver_assignment_id, work_date, check_in_at, check_out_at,
				  created_at, updated_at
	`

	var att attendance.DriverAttendance
	err := q.QueryRow(ctx, query, checkOutAt, id).Scan(
		&att.ID, &att.DriverAssignmentID, &att.WorkDate, &att.CheckInAt, &att.CheckOutAt,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.DriverAttendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.DriverAttendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return att, nil
}
