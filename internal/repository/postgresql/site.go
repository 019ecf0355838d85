package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/site"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

// Create implements site.SiteRepository.
func (r *siteRepository) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = site.SiteStatusPendingApproval
	}

	query := `
		INSERT INTO sites (id, name, address, start_date, end_date, status, requested_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING requested_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.Address, s.StartDate, s.EndDate, s.Status, s.RequestedByID,
	).Scan(&s.RequestedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, start_date, end_date, status,
			   requested_by_id, approved_by_id, requested_at, approved_at,
			   created_at, updated_at
		FROM sites
		WHERE id = $1
	`

	var s site.Site
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.StartDate, &s.EndDate, &s.Status,
		&s.RequestedByID, &s.ApprovedByID, &s.RequestedAt, &s.ApprovedAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site by ID: %w", err)
	}

	return s, nil
}

// List implements site.SiteRepository.
func (r *siteRepository) List(ctx context.Context, filter site.ListFilter) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Mine && filter.UserID != nil {
		baseWhere += fmt.Sprintf(" AND requested_by_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, name, address, start_date, end_date, status,
			   requested_by_id, approved_by_id, requested_at, approved_at,
			   created_at, updated_at
		FROM sites
		WHERE %s
		ORDER BY requested_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		err := rows.Scan(
			&s.ID, &s.Name, &s.Address, &s.StartDate, &s.EndDate, &s.Status,
			&s.RequestedByID, &s.ApprovedByID, &s.RequestedAt, &s.ApprovedAt,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, nil
}

// UpdateStatus implements site.SiteRepository.
// The status predicate in the WHERE clause makes the transition conditional:
// a concurrent writer that moved the row first leaves nothing to update.
func (r *siteRepository) UpdateStatus(ctx context.Context, id string, from, to site.SiteStatus, approvedBy *string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	var approvedAt *time.Time
	if approvedBy != nil {
		now := time.Now()
		approvedAt = &now
	}

	query := `
		UPDATE sites
		SET status = $1,
			approved_by_id = COALESCE($2, approved_by_id),
			approved_at = COALESCE($3, approved_at),
			updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING id, name, address, start_date, end_date, status,
				  requested_by_id, approved_by_id, requested_at, approved_at,
				  created_at, updated_at
	`

	var s site.Site
	err := q.QueryRow(ctx, query, to, approvedBy, approvedAt, id, from).Scan(
		&s.ID, &s.Name, &s.Address, &s.StartDate, &s.EndDate, &s.Status,
		&s.RequestedByID, &s.ApprovedByID, &s.RequestedAt, &s.ApprovedAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to update site status: %w", err)
	}

	return s, nil
}
