package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/assignment"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/site"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/dycrane/crane-safety-backend-go/internal/repository/postgresql"
	usersvc "github.com/dycrane/crane-safety-backend-go/internal/service/user"
)

type Service struct {
	db *database.DB
	assignment.SiteCraneAssignmentRepository
	assignment.DriverAssignmentRepository
	craneRepository crane.CraneRepository
	siteRepository  site.SiteRepository
	userService     *usersvc.Service
}

func NewService(
	db *database.DB,
	siteCraneRepository assignment.SiteCraneAssignmentRepository,
	driverRepository assignment.DriverAssignmentRepository,
	craneRepository crane.CraneRepository,
	siteRepository site.SiteRepository,
	userService *usersvc.Service,
) *Service {
	return &Service{
		db:                            db,
		SiteCraneAssignmentRepository: siteCraneRepository,
		DriverAssignmentRepository:    driverRepository,
		craneRepository:               craneRepository,
		siteRepository:                siteRepository,
		userService:                   userService,
	}
}

// AssignCraneToSite claims a crane for a site over a date interval. The lock,
// the overlap check, and the insert all run in one transaction so two racing
// requests for the same crane cannot both succeed.
func (s *Service) AssignCraneToSite(ctx context.Context, req assignment.AssignCraneRequest) (assignment.SiteCraneAssignment, error) {
	if err := req.Validate(); err != nil {
		return assignment.SiteCraneAssignment{}, err
	}

	if _, err := s.userService.GetAndValidateRole(ctx, req.SafetyManagerID, user.RoleSafetyManager); err != nil {
		return assignment.SiteCraneAssignment{}, err
	}

	c, err := s.craneRepository.GetByID(ctx, req.CraneID)
	if err != nil {
		return assignment.SiteCraneAssignment{}, err
	}
	if !c.IsAssignable() {
		return assignment.SiteCraneAssignment{}, crane.ErrCraneNotAssignable
	}

	target, err := s.siteRepository.GetByID(ctx, req.SiteID)
	if err != nil {
		return assignment.SiteCraneAssignment{}, err
	}
	if target.Status != site.SiteStatusActive {
		return assignment.SiteCraneAssignment{}, site.ErrSiteNotActive
	}

	interval := parseInterval(req.StartDate, req.EndDate)

	var created assignment.SiteCraneAssignment
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.SiteCraneAssignmentRepository.LockCrane(ctx, req.CraneID); err != nil {
			return err
		}

		blockingID, err := s.SiteCraneAssignmentRepository.FindOverlapping(ctx, req.CraneID, interval)
		if err != nil {
			return err
		}
		if blockingID != "" {
			return &assignment.OverlapError{
				ResourceKind: assignment.ResourceKindCrane,
				ResourceID:   req.CraneID,
				BlockingID:   blockingID,
			}
		}

		created, err = s.SiteCraneAssignmentRepository.Create(ctx, assignment.SiteCraneAssignment{
			SiteID:     req.SiteID,
			CraneID:    req.CraneID,
			AssignedBy: req.SafetyManagerID,
			StartDate:  interval.Start,
			EndDate:    interval.End,
			Status:     assignment.AssignmentStatusAssigned,
		})
		return err
	})
	if err != nil {
		return assignment.SiteCraneAssignment{}, err
	}

	return created, nil
}

// AssignDriverToCrane claims a driver for a site-crane assignment. The
// driver's interval must nest inside the parent's, and the driver must not be
// claimed elsewhere during it.
func (s *Service) AssignDriverToCrane(ctx context.Context, req assignment.AssignDriverRequest) (assignment.DriverAssignment, error) {
	if err := req.Validate(); err != nil {
		return assignment.DriverAssignment{}, err
	}

	if _, err := s.userService.GetAndValidateRole(ctx, req.DriverID, user.RoleDriver); err != nil {
		return assignment.DriverAssignment{}, err
	}

	parent, err := s.SiteCraneAssignmentRepository.GetByID(ctx, req.SiteCraneID)
	if err != nil {
		return assignment.DriverAssignment{}, err
	}
	if parent.Status != assignment.AssignmentStatusAssigned {
		return assignment.DriverAssignment{}, assignment.ErrNotAssigned
	}

	interval := parseInterval(req.StartDate, req.EndDate)
	parentInterval := assignment.Interval{Start: parent.StartDate, End: parent.EndDate}
	if !parentInterval.Contains(interval) {
		return assignment.DriverAssignment{}, assignment.ErrIntervalNotNested
	}

	var created assignment.DriverAssignment
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.DriverAssignmentRepository.LockDriver(ctx, req.DriverID); err != nil {
			return err
		}

		blockingID, err := s.DriverAssignmentRepository.FindOverlapping(ctx, req.DriverID, interval)
		if err != nil {
			return err
		}
		if blockingID != "" {
			return &assignment.OverlapError{
				ResourceKind: assignment.ResourceKindDriver,
				ResourceID:   req.DriverID,
				BlockingID:   blockingID,
			}
		}

		created, err = s.DriverAssignmentRepository.Create(ctx, assignment.DriverAssignment{
			SiteCraneID: req.SiteCraneID,
			DriverID:    req.DriverID,
			StartDate:   interval.Start,
			EndDate:     interval.End,
			Status:      assignment.AssignmentStatusAssigned,
		})
		return err
	})
	if err != nil {
		return assignment.DriverAssignment{}, err
	}

	return created, nil
}

// ReleaseCraneAssignment frees the crane's interval for future claims.
func (s *Service) ReleaseCraneAssignment(ctx context.Context, assignmentID string, safetyManagerID string) error {
	if _, err := s.userService.GetAndValidateRole(ctx, safetyManagerID, user.RoleSafetyManager); err != nil {
		return err
	}

	a, err := s.SiteCraneAssignmentRepository.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if a.Status != assignment.AssignmentStatusAssigned {
		return assignment.ErrNotAssigned
	}

	if err := s.SiteCraneAssignmentRepository.UpdateStatus(ctx, assignmentID, assignment.AssignmentStatusReleased); err != nil {
		return fmt.Errorf("failed to release crane assignment: %w", err)
	}

	return nil
}

// ReleaseDriverAssignment frees the driver's interval for future claims.
func (s *Service) ReleaseDriverAssignment(ctx context.Context, assignmentID string, safetyManagerID string) error {
	if _, err := s.userService.GetAndValidateRole(ctx, safetyManagerID, user.RoleSafetyManager); err != nil {
		return err
	}

	a, err := s.DriverAssignmentRepository.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if a.Status != assignment.AssignmentStatusAssigned {
		return assignment.ErrNotAssigned
	}

	if err := s.DriverAssignmentRepository.UpdateStatus(ctx, assignmentID, assignment.AssignmentStatusReleased); err != nil {
		return fmt.Errorf("failed to release driver assignment: %w", err)
	}

	return nil
}

func (s *Service) ListCraneAssignmentsBySite(ctx context.Context, siteID string) ([]assignment.SiteCraneAssignment, error) {
	assignments, err := s.SiteCraneAssignmentRepository.ListBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crane assignments: %w", err)
	}
	return assignments, nil
}

func (s *Service) ListDriverAssignments(ctx context.Context, siteCraneID string) ([]assignment.DriverAssignment, error) {
	assignments, err := s.DriverAssignmentRepository.ListBySiteCrane(ctx, siteCraneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver assignments: %w", err)
	}
	return assignments, nil
}

// parseInterval converts validated date strings. Callers run Validate first,
// so parse errors cannot occur here.
func parseInterval(start string, end *string) assignment.Interval {
	startDate, _ := time.Parse("2006-01-02", start)
	interval := assignment.Interval{Start: startDate}
	if end != nil {
		endDate, _ := time.Parse("2006-01-02", *end)
		interval.End = &endDate
	}
	return interval
}
