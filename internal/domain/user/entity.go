package user

import "time"

type Role string

const (
	RoleDriver        Role = "DRIVER"         // Operates assigned cranes, submits documents
	RoleSafetyManager Role = "SAFETY_MANAGER" // Requests sites, assigns resources, reviews documents
	RoleOwner         Role = "OWNER"          // Crane-owning org member, responds to deploy requests
	RoleManufacturer  Role = "MANUFACTURER"   // Approves or rejects sites
)

// Roles are mutually exclusive; every authorization check in the core is a
// direct equality test against exactly one of them.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsDriver checks if the user holds the driver role
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}

// IsSafetyManager checks if the user holds the safety manager role
func (u *User) IsSafetyManager() bool {
	return u.Role == RoleSafetyManager
}

// CanApproveSites checks if the user may move sites out of pending approval
func (u *User) CanApproveSites() bool {
	return u.Role == RoleManufacturer
}

// CanRespondToRequests checks if the user may respond to deploy requests
func (u *User) CanRespondToRequests() bool {
	return u.Role == RoleOwner
}
