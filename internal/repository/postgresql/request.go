package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/request"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepository{db: db}
}

// Create implements request.RequestRepository.
func (r *requestRepository) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = request.RequestStatusPending
	}

	query := `
		INSERT INTO requests (id, type, status, requester_id, target_entity_id, related_entity_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING requested_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.Type, req.Status, req.RequesterID, req.TargetEntityID, req.RelatedEntityID, req.Notes,
	).Scan(&req.RequestedAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	return req, nil
}

// GetByID implements request.RequestRepository.
func (r *requestRepository) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, status, requester_id, approver_id, target_entity_id,
			   related_entity_id, notes, requested_at, responded_at,
			   created_at, updated_at
		FROM requests
		WHERE id = $1
	`

	var req request.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Type, &req.Status, &req.RequesterID, &req.ApproverID, &req.TargetEntityID,
		&req.RelatedEntityID, &req.Notes, &req.RequestedAt, &req.RespondedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get request by ID: %w", err)
	}

	return req, nil
}

// ListForOwnerOrg implements request.RequestRepository.
// Joins through cranes so an owner only sees requests aimed at its fleet.
func (r *requestRepository) ListForOwnerOrg(ctx context.Context, ownerOrgID string, filter request.OwnerListFilter) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "c.owner_org_id = $1"
	args := []interface{}{ownerOrgID}
	argIdx := 2

	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND r.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.type, r.status, r.requester_id, r.approver_id, r.target_entity_id,
			   r.related_entity_id, r.notes, r.requested_at, r.responded_at,
			   r.created_at, r.updated_at
		FROM requests r
		JOIN cranes c ON r.target_entity_id = c.id
		WHERE %s
		ORDER BY r.requested_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests for owner org: %w", err)
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		var req request.Request
		err := rows.Scan(
			&req.ID, &req.Type, &req.Status, &req.RequesterID, &req.ApproverID, &req.TargetEntityID,
			&req.RelatedEntityID, &req.Notes, &req.RequestedAt, &req.RespondedAt,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// UpdateResponse implements request.RequestRepository.
// Only a PENDING request accepts a response; the status predicate keeps a
// concurrent second response from overwriting a terminal state.
func (r *requestRepository) UpdateResponse(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $1, approver_id = $2, notes = $3, responded_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
		RETURNING id, type, status, requester_id, approver_id, target_entity_id,
				  related_entity_id, notes, requested_at, responded_at,
				  created_at, updated_at
	`

	var updated request.Request
	err := q.QueryRow(ctx, query, req.Status, req.ApproverID, req.Notes, req.RespondedAt, req.ID, request.RequestStatusPending).Scan(
		&updated.ID, &updated.Type, &updated.Status, &updated.RequesterID, &updated.ApproverID, &updated.TargetEntityID,
		&updated.RelatedEntityID, &updated.Notes, &updated.RequestedAt, &updated.RespondedAt,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return request.Request{}, request.ErrRequestNotPending
		}
		return request.Request{}, fmt.Errorf("failed to update request response: %w", err)
	}

	return updated, nil
}
