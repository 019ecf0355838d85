package user

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/user"
)

type Service struct {
	user.UserRepository
}

func NewService(userRepository user.UserRepository) *Service {
	return &Service{
		UserRepository: userRepository,
	}
}

// GetAndValidateRole loads the user and checks they are active and hold the
// expected role. Every role-gated operation goes through this.
func (s *Service) GetAndValidateRole(ctx context.Context, userID string, role user.Role) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if !u.IsActive {
		return user.User{}, user.ErrUserInactive
	}
	if u.Role != role {
		return user.User{}, user.ErrRoleMismatch
	}

	return u, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
