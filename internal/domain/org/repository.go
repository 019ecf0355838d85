package org

import "context"

// OrgRepository - interface for the orgs and user_orgs tables
type OrgRepository interface {
	Create(ctx context.Context, o Org) (Org, error)
	GetByID(ctx context.Context, id string) (Org, error)
	AddMember(ctx context.Context, orgID, userID string) error
	GetOrgIDForUser(ctx context.Context, userID string) (string, error)
	ListOwnersWithStats(ctx context.Context) ([]OwnerStats, error)
}
