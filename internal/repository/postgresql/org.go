package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/org"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type orgRepository struct {
	db *database.DB
}

func NewOrgRepository(db *database.DB) org.OrgRepository {
	return &orgRepository{db: db}
}

// Create implements org.OrgRepository.
func (r *orgRepository) Create(ctx context.Context, o org.Org) (org.Org, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	query := `
		INSERT INTO orgs (id, name, type)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, o.ID, o.Name, o.Type).Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return org.Org{}, fmt.Errorf("failed to create org: %w", err)
	}

	return o, nil
}

// GetByID implements org.OrgRepository.
func (r *orgRepository) GetByID(ctx context.Context, id string) (org.Org, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, created_at, updated_at
		FROM orgs
		WHERE id = $1
	`

	var o org.Org
	err := q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.Type, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return org.Org{}, org.ErrOrgNotFound
		}
		return org.Org{}, fmt.Errorf("failed to get org by ID: %w", err)
	}

	return o, nil
}

// AddMember implements org.OrgRepository.
func (r *orgRepository) AddMember(ctx context.Context, orgID, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_orgs (user_id, org_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := q.Exec(ctx, query, userID, orgID); err != nil {
		return fmt.Errorf("failed to add org member: %w", err)
	}

	return nil
}

// GetOrgIDForUser implements org.OrgRepository.
func (r *orgRepository) GetOrgIDForUser(ctx context.Context, userID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT org_id
		FROM user_orgs
		WHERE user_id = $1
		LIMIT 1
	`

	var orgID string
	err := q.QueryRow(ctx, query, userID).Scan(&orgID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", org.ErrOrgNotFound
		}
		return "", fmt.Errorf("failed to get org for user: %w", err)
	}

	return orgID, nil
}

// ListOwnersWithStats implements org.OrgRepository.
func (r *orgRepository) ListOwnersWithStats(ctx context.Context) ([]org.OwnerStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.name,
			   COUNT(c.id) AS total_cranes,
			   COUNT(c.id) FILTER (WHERE c.status = $1) AS available_cranes
		FROM orgs o
		LEFT JOIN cranes c ON c.owner_org_id = o.id
		WHERE o.type = $2
		GROUP BY o.id, o.name
		ORDER BY o.name
	`

	rows, err := q.Query(ctx, query, crane.CraneStatusNormal, org.OrgTypeOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner stats: %w", err)
	}
	defer rows.Close()

	var stats []org.OwnerStats
	for rows.Next() {
		var s org.OwnerStats
		if err := rows.Scan(&s.ID, &s.Name, &s.TotalCranes, &s.AvailableCranes); err != nil {
			return nil, fmt.Errorf("failed to scan owner stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, nil
}
