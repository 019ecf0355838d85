package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// IsMemberOfCraneOwnerOrg reports whether the user belongs to the
	// organization that owns the given crane.
	IsMemberOfCraneOwnerOrg(ctx context.Context, userID, craneID string) (bool, error)
}
