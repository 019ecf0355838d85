package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/document"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type documentRequestRepository struct {
	db *database.DB
}

func NewDocumentRequestRepository(db *database.DB) document.DocumentRequestRepository {
	return &documentRequestRepository{db: db}
}

// Create implements document.DocumentRequestRepository.
func (r *documentRequestRepository) Create(ctx context.Context, req document.DriverDocumentRequest) (document.DriverDocumentRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO driver_document_requests (id, site_id, driver_id, requested_by_id, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.SiteID, req.DriverID, req.RequestedByID, req.DueDate,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return document.DriverDocumentRequest{}, fmt.Errorf("failed to create document request: %w", err)
	}

	return req, nil
}

// GetByID implements document.DocumentRequestRepository.
func (r *documentRequestRepository) GetByID(ctx context.Context, id string) (document.DriverDocumentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, driver_id, requested_by_id, due_date, created_at, updated_at
		FROM driver_document_requests
		WHERE id = $1
	`

	var req document.DriverDocumentRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.SiteID, &req.DriverID, &req.RequestedByID, &req.DueDate,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.DriverDocumentRequest{}, document.ErrRequestNotFound
		}
		return document.DriverDocumentRequest{}, fmt.Errorf("failed to get document request by ID: %w", err)
	}

	return req, nil
}

// ListByDriver implements document.DocumentRequestRepository.
func (r *documentRequestRepository) ListByDriver(ctx context.Context, driverID string) ([]document.DriverDocumentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, site_id, driver_id, requested_by_id, due_date, created_at, updated_at
		FROM driver_document_requests
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to query document requests: %w", err)
	}
	defer rows.Close()

	var requests []document.DriverDocumentRequest
	for rows.Next() {
		var req document.DriverDocumentRequest
		err := rows.Scan(
			&req.ID, &req.SiteID, &req.DriverID, &req.RequestedByID, &req.DueDate,
			&req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

type documentItemRepository struct {
	db *database.DB
}

func NewDocumentItemRepository(db *database.DB) document.DocumentItemRepository {
	return &documentItemRepository{db: db}
}

// Create implements document.DocumentItemRepository.
func (r *documentItemRepository) Create(ctx context.Context, item document.DriverDocumentItem) (document.DriverDocumentItem, error) {
	q := GetQuerier(ctx, r.db)

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = document.DocItemStatusPending
	}

	query := `
		INSERT INTO driver_document_items (id, request_id, doc_type, file_url, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		item.ID, item.RequestID, item.DocType, item.FileURL, item.Status, item.SubmittedAt,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return document.DriverDocumentItem{}, fmt.Errorf("failed to create document item: %w", err)
	}

	return item, nil
}

// GetByID implements document.DocumentItemRepository.
func (r *documentItemRepository) GetByID(ctx context.Context, id string) (document.DriverDocumentItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, request_id, doc_type, file_url, status, reviewer_id,
			   submitted_at, reviewed_at, created_at, updated_at
		FROM driver_document_items
		WHERE id = $1
	`

	var item document.DriverDocumentItem
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.RequestID, &item.DocType, &item.FileURL, &item.Status, &item.ReviewerID,
		&item.SubmittedAt, &item.ReviewedAt, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.DriverDocumentItem{}, document.ErrItemNotFound
		}
		return document.DriverDocumentItem{}, fmt.Errorf("failed to get document item by ID: %w", err)
	}

	return item, nil
}

// ListByRequest implements document.DocumentItemRepository.
func (r *documentItemRepository) ListByRequest(ctx context.Context, requestID string) ([]document.DriverDocumentItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, request_id, doc_type, file_url, status, reviewer_id,
			   submitted_at, reviewed_at, created_at, updated_at
		FROM driver_document_items
		WHERE request_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query document items: %w", err)
	}
	defer rows.Close()

	var items []document.DriverDocumentItem
	for rows.Next() {
		var item document.DriverDocumentItem
		err := rows.Scan(
			&item.ID, &item.RequestID, &item.DocType, &item.FileURL, &item.Status, &item.ReviewerID,
			&item.SubmittedAt, &item.ReviewedAt, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// UpdateReview implements document.DocumentItemRepository.
// Only a SUBMITTED item accepts the review; the status predicate keeps a
// concurrent second review from overwriting a terminal state.
func (r *documentItemRepository) UpdateReview(ctx context.Context, item document.DriverDocumentItem) (document.DriverDocumentItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE driver_document_items
		SET status = $1, reviewer_id = $2, reviewed_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING id, request_id, doc_type, file_url, status, reviewer_id,
				  submitted_at, reviewed_at, created_at, updated_at
	`

	var updated document.DriverDocumentItem
	err := q.QueryRow(ctx, query, item.Status, item.ReviewerID, item.ReviewedAt, item.ID, document.DocItemStatusSubmitted).Scan(
		&updated.ID, &updated.RequestID, &updated.DocType, &updated.FileURL, &updated.Status, &updated.ReviewerID,
		&updated.SubmittedAt, &updated.ReviewedAt, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return document.DriverDocumentItem{}, document.ErrItemNotSubmitted
		}
		return document.DriverDocumentItem{}, fmt.Errorf("failed to update document item review: %w", err)
	}

	return updated, nil
}
