package site

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/site"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	usersvc "github.com/dycrane/crane-safety-backend-go/internal/service/user"
)

type Service struct {
	site.SiteRepository
	userService *usersvc.Service
}

func NewService(siteRepository site.SiteRepository, userService *usersvc.Service) *Service {
	return &Service{
		SiteRepository: siteRepository,
		userService:    userService,
	}
}

// Create registers a new site in PENDING_APPROVAL. Only safety managers may
// request sites.
func (s *Service) Create(ctx context.Context, req site.CreateSiteRequest) (site.Site, error) {
	if err := req.Validate(); err != nil {
		return site.Site{}, err
	}

	if _, err := s.userService.GetAndValidateRole(ctx, req.RequestedByID, user.RoleSafetyManager); err != nil {
		return site.Site{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.SiteRepository.Create(ctx, site.Site{
		Name:          req.Name,
		Address:       req.Address,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        site.SiteStatusPendingApproval,
		RequestedByID: req.RequestedByID,
	})
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return created, nil
}

// Approve moves a pending site to ACTIVE. Only manufacturers may approve.
func (s *Service) Approve(ctx context.Context, siteID string, approvedByID string) (site.Site, error) {
	return s.review(ctx, siteID, approvedByID, site.SiteStatusActive)
}

// Reject moves a pending site to REJECTED. Only manufacturers may reject.
func (s *Service) Reject(ctx context.Context, siteID string, approvedByID string) (site.Site, error) {
	return s.review(ctx, siteID, approvedByID, site.SiteStatusRejected)
}

func (s *Service) review(ctx context.Context, siteID, reviewerID string, target site.SiteStatus) (site.Site, error) {
	if _, err := s.userService.GetAndValidateRole(ctx, reviewerID, user.RoleManufacturer); err != nil {
		return site.Site{}, err
	}

	current, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return site.Site{}, err
	}

	if !current.CanTransitionTo(target) {
		return site.Site{}, site.ErrSiteNotPending
	}

	updated, err := s.SiteRepository.UpdateStatus(ctx, siteID, site.SiteStatusPendingApproval, target, &reviewerID)
	if err != nil {
		// A concurrent review moved the site first
		if errors.Is(err, site.ErrSiteNotFound) {
			return site.Site{}, site.ErrSiteNotPending
		}
		return site.Site{}, fmt.Errorf("failed to update site status: %w", err)
	}

	return updated, nil
}

// Complete closes out an active site. Only safety managers may complete.
func (s *Service) Complete(ctx context.Context, siteID string, completedByID string) (site.Site, error) {
	if _, err := s.userService.GetAndValidateRole(ctx, completedByID, user.RoleSafetyManager); err != nil {
		return site.Site{}, err
	}

	current, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return site.Site{}, err
	}

	if !current.CanTransitionTo(site.SiteStatusCompleted) {
		return site.Site{}, site.ErrSiteNotActive
	}

	updated, err := s.SiteRepository.UpdateStatus(ctx, siteID, site.SiteStatusActive, site.SiteStatusCompleted, nil)
	if err != nil {
		if errors.Is(err, site.ErrSiteNotFound) {
			return site.Site{}, site.ErrSiteNotActive
		}
		return site.Site{}, fmt.Errorf("failed to update site status: %w", err)
	}

	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, siteID string) (site.Site, error) {
	return s.SiteRepository.GetByID(ctx, siteID)
}

func (s *Service) List(ctx context.Context, filter site.ListFilter) ([]site.Site, error) {
	sites, err := s.SiteRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}
