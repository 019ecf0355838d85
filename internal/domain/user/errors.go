package user

import "errors"

var (
	ErrUserNotFound = errors.New("User not found")
	ErrUserInactive = errors.New("User is inactive")
	ErrRoleMismatch = errors.New("User does not hold the required role")
)
