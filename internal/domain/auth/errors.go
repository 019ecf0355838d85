package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrTokenExpired       = errors.New("Token expired")
	ErrInvalidToken       = errors.New("Invalid token")
)
