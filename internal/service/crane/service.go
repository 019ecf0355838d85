package crane

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/domain/org"
)

type Service struct {
	crane.CraneRepository
	crane.CraneModelRepository
	orgRepository org.OrgRepository
}

func NewService(
	craneRepository crane.CraneRepository,
	modelRepository crane.CraneModelRepository,
	orgRepository org.OrgRepository,
) *Service {
	return &Service{
		CraneRepository:      craneRepository,
		CraneModelRepository: modelRepository,
		orgRepository:        orgRepository,
	}
}

func (s *Service) GetCrane(ctx context.Context, craneID string) (crane.Crane, error) {
	return s.CraneRepository.GetByID(ctx, craneID)
}

// ListCranes returns the fleet narrowed by the given filter.
func (s *Service) ListCranes(ctx context.Context, filter crane.ListFilter) ([]crane.Crane, error) {
	cranes, err := s.CraneRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cranes: %w", err)
	}
	return cranes, nil
}

func (s *Service) GetModel(ctx context.Context, modelID string) (crane.CraneModel, error) {
	return s.CraneModelRepository.GetByID(ctx, modelID)
}

func (s *Service) ListModels(ctx context.Context) ([]crane.CraneModel, error) {
	models, err := s.CraneModelRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crane models: %w", err)
	}
	return models, nil
}

// ListOwners aggregates owner organizations with their fleet counts.
func (s *Service) ListOwners(ctx context.Context) ([]org.OwnerStats, error) {
	owners, err := s.orgRepository.ListOwnersWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner organizations: %w", err)
	}
	return owners, nil
}
