package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/org"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/request"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	usersvc "github.com/dycrane/crane-safety-backend-go/internal/service/user"
)

type Service struct {
	request.RequestRepository
	orgRepository org.OrgRepository
	userService   *usersvc.Service
}

func NewService(
	requestRepository request.RequestRepository,
	orgRepository org.OrgRepository,
	userService *usersvc.Service,
) *Service {
	return &Service{
		RequestRepository: requestRepository,
		orgRepository:     orgRepository,
		userService:       userService,
	}
}

// Create opens a PENDING deploy request targeting a crane.
func (s *Service) Create(ctx context.Context, req request.CreateRequestRequest) (request.Request, error) {
	if err := req.Validate(); err != nil {
		return request.Request{}, err
	}

	if _, err := s.userService.GetByID(ctx, req.RequesterID); err != nil {
		return request.Request{}, err
	}

	created, err := s.RequestRepository.Create(ctx, request.Request{
		Type:            req.Type,
		Status:          request.RequestStatusPending,
		RequesterID:     req.RequesterID,
		TargetEntityID:  req.TargetEntityID,
		RelatedEntityID: req.RelatedEntityID,
		Notes:           req.Notes,
	})
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	return created, nil
}

// Respond resolves a pending request. The approver must hold the owner role
// and belong to the organization that owns the target crane. Responding to an
// already-resolved request fails regardless of the new status.
func (s *Service) Respond(ctx context.Context, requestID string, req request.RespondRequestRequest) (request.Request, error) {
	if err := req.Validate(); err != nil {
		return request.Request{}, err
	}

	current, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.Request{}, err
	}

	if !current.IsPending() {
		return request.Request{}, request.ErrRequestNotPending
	}

	approver, err := s.userService.GetAndValidateRole(ctx, req.ApproverID, user.RoleOwner)
	if err != nil {
		return request.Request{}, err
	}

	owns, err := s.userService.IsMemberOfCraneOwnerOrg(ctx, approver.ID, current.TargetEntityID)
	if err != nil {
		return request.Request{}, fmt.Errorf("failed to check crane ownership: %w", err)
	}
	if !owns {
		return request.Request{}, request.ErrNotCraneOwner
	}

	now := time.Now()
	current.Status = req.Status
	current.ApproverID = &req.ApproverID
	current.RespondedAt = &now
	if req.Notes != nil {
		current.Notes = req.Notes
	}

	updated, err := s.RequestRepository.UpdateResponse(ctx, current)
	if err != nil {
		// A concurrent response resolved the request first
		if errors.Is(err, request.ErrRequestNotPending) {
			return request.Request{}, request.ErrRequestNotPending
		}
		return request.Request{}, fmt.Errorf("failed to update request response: %w", err)
	}

	return updated, nil
}

// ListForOwner returns requests aimed at the owner's crane fleet.
func (s *Service) ListForOwner(ctx context.Context, ownerID string, filter request.OwnerListFilter) ([]request.Request, error) {
	if _, err := s.userService.GetAndValidateRole(ctx, ownerID, user.RoleOwner); err != nil {
		return nil, err
	}

	orgID, err := s.orgRepository.GetOrgIDForUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	requests, err := s.RequestRepository.ListForOwnerOrg(ctx, orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for owner: %w", err)
	}

	return requests, nil
}

func (s *Service) GetByID(ctx context.Context, requestID string) (request.Request, error) {
	return s.RequestRepository.GetByID(ctx, requestID)
}
