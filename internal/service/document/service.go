package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/config"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/document"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/validator"
	usersvc "github.com/dycrane/crane-safety-backend-go/internal/service/user"
)

type Service struct {
	document.DocumentRequestRepository
	document.DocumentItemRepository
	userService *usersvc.Service
	docConfig   config.DocumentConfig
}

func NewService(
	requestRepository document.DocumentRequestRepository,
	itemRepository document.DocumentItemRepository,
	userService *usersvc.Service,
	docConfig config.DocumentConfig,
) *Service {
	return &Service{
		DocumentRequestRepository: requestRepository,
		DocumentItemRepository:    itemRepository,
		userService:               userService,
		docConfig:                 docConfig,
	}
}

// CreateRequest opens a document request against a driver. Only safety
// managers may request documents, and the target must hold the driver role.
func (s *Service) CreateRequest(ctx context.Context, req document.CreateDocumentRequestRequest) (document.DriverDocumentRequest, error) {
	if err := req.Validate(); err != nil {
		return document.DriverDocumentRequest{}, err
	}

	if _, err := s.userService.GetAndValidateRole(ctx, req.RequestedByID, user.RoleSafetyManager); err != nil {
		return document.DriverDocumentRequest{}, err
	}
	if _, err := s.userService.GetAndValidateRole(ctx, req.DriverID, user.RoleDriver); err != nil {
		return document.DriverDocumentRequest{}, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		d, _ := time.Parse("2006-01-02", *req.DueDate)
		dueDate = &d
	}

	created, err := s.DocumentRequestRepository.Create(ctx, document.DriverDocumentRequest{
		SiteID:        req.SiteID,
		DriverID:      req.DriverID,
		RequestedByID: req.RequestedByID,
		DueDate:       dueDate,
	})
	if err != nil {
		return document.DriverDocumentRequest{}, fmt.Errorf("failed to create document request: %w", err)
	}

	return created, nil
}

// SubmitItem attaches a document file to a request. The file URL must use the
// configured scheme and carry an allowed extension; both are checked before
// any write happens.
func (s *Service) SubmitItem(ctx context.Context, req document.SubmitItemRequest) (document.DriverDocumentItem, error) {
	if err := req.Validate(); err != nil {
		return document.DriverDocumentItem{}, err
	}

	var errs validator.ValidationErrors
	if !validator.HasURLScheme(req.FileURL, s.docConfig.RequiredScheme) {
		errs = append(errs, validator.ValidationError{
			Field:   "file_url",
			Message: fmt.Sprintf("URL must use the %s scheme", s.docConfig.RequiredScheme),
		})
	}
	if !validator.HasAllowedExtension(req.FileURL, s.docConfig.AllowedExtensions) {
		errs = append(errs, validator.ValidationError{
			Field:   "file_url",
			Message: "File type is not allowed",
		})
	}
	if len(errs) > 0 {
		return document.DriverDocumentItem{}, errs
	}

	if _, err := s.DocumentRequestRepository.GetByID(ctx, req.RequestID); err != nil {
		return document.DriverDocumentItem{}, err
	}

	now := time.Now()
	created, err := s.DocumentItemRepository.Create(ctx, document.DriverDocumentItem{
		RequestID:   req.RequestID,
		DocType:     req.DocType,
		FileURL:     &req.FileURL,
		Status:      document.DocItemStatusSubmitted,
		SubmittedAt: &now,
	})
	if err != nil {
		return document.DriverDocumentItem{}, fmt.Errorf("failed to create document item: %w", err)
	}

	return created, nil
}

// ReviewItem approves or rejects a submitted item. Only safety managers may
// review, and only SUBMITTED items accept a review.
func (s *Service) ReviewItem(ctx context.Context, req document.ReviewItemRequest) (document.DriverDocumentItem, error) {
	if _, err := s.userService.GetAndValidateRole(ctx, req.ReviewerID, user.RoleSafetyManager); err != nil {
		return document.DriverDocumentItem{}, err
	}

	item, err := s.DocumentItemRepository.GetByID(ctx, req.ItemID)
	if err != nil {
		return document.DriverDocumentItem{}, err
	}

	if !item.IsReviewable() {
		return document.DriverDocumentItem{}, document.ErrItemNotSubmitted
	}

	now := time.Now()
	item.ReviewerID = &req.ReviewerID
	item.ReviewedAt = &now
	if req.Approve {
		item.Status = document.DocItemStatusApproved
	} else {
		item.Status = document.DocItemStatusRejected
	}

	updated, err := s.DocumentItemRepository.UpdateReview(ctx, item)
	if err != nil {
		// A concurrent review resolved the item first
		if errors.Is(err, document.ErrItemNotSubmitted) {
			return document.DriverDocumentItem{}, document.ErrItemNotSubmitted
		}
		return document.DriverDocumentItem{}, fmt.Errorf("failed to update document item review: %w", err)
	}

	return updated, nil
}

func (s *Service) ListRequestsByDriver(ctx context.Context, driverID string) ([]document.DriverDocumentRequest, error) {
	requests, err := s.DocumentRequestRepository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list document requests: %w", err)
	}
	return requests, nil
}

func (s *Service) ListItemsByRequest(ctx context.Context, requestID string) ([]document.DriverDocumentItem, error) {
	items, err := s.DocumentItemRepository.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list document items: %w", err)
	}
	return items, nil
}
