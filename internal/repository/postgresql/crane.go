package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type craneRepository struct {
	db *database.DB
}

func NewCraneRepository(db *database.DB) crane.CraneRepository {
	return &craneRepository{db: db}
}

// Create implements crane.CraneRepository.
func (r *craneRepository) Create(ctx context.Context, c crane.Crane) (crane.Crane, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = crane.CraneStatusNormal
	}

	query := `
		INSERT INTO cranes (id, owner_org_id, model_id, serial_no, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID, c.OwnerOrgID, c.ModelID, c.SerialNo, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return crane.Crane{}, fmt.Errorf("failed to create crane: %w", err)
	}

	return c, nil
}

// GetByID implements crane.CraneRepository.
func (r *craneRepository) GetByID(ctx context.Context, id string) (crane.Crane, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.owner_org_id, c.model_id, c.serial_no, c.status,
			   c.created_at, c.updated_at,
			   m.model_name
		FROM cranes c
		LEFT JOIN crane_models m ON m.id = c.model_id
		WHERE c.id = $1
	`

	var c crane.Crane
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.OwnerOrgID, &c.ModelID, &c.SerialNo, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
		&c.ModelName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return crane.Crane{}, crane.ErrCraneNotFound
		}
		return crane.Crane{}, fmt.Errorf("failed to get crane by ID: %w", err)
	}

	return c, nil
}

// List implements crane.CraneRepository.
func (r *craneRepository) List(ctx context.Context, filter crane.ListFilter) ([]crane.Crane, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.OwnerOrgID != nil && *filter.OwnerOrgID != "" {
		baseWhere += fmt.Sprintf(" AND c.owner_org_id = $%d", argIdx)
		args = append(args, *filter.OwnerOrgID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.ModelName != nil && *filter.ModelName != "" {
		baseWhere += fmt.Sprintf(" AND m.model_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.ModelName+"%")
		argIdx++
	}
	if filter.MinCapacity != nil {
		baseWhere += fmt.Sprintf(" AND m.max_lifting_capacity_ton_m >= $%d", argIdx)
		args = append(args, *filter.MinCapacity)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.owner_org_id, c.model_id, c.serial_no, c.status,
			   c.created_at, c.updated_at,
			   m.model_name
		FROM cranes c
		LEFT JOIN crane_models m ON m.id = c.model_id
		WHERE %s
		ORDER BY m.model_name
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cranes: %w", err)
	}
	defer rows.Close()

	var cranes []crane.Crane
	for rows.Next() {
		var c crane.Crane
		err := rows.Scan(
			&c.ID, &c.OwnerOrgID, &c.ModelID, &c.SerialNo, &c.Status,
			&c.CreatedAt, &c.UpdatedAt,
			&c.ModelName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crane: %w", err)
		}
		cranes = append(cranes, c)
	}

	return cranes, nil
}
