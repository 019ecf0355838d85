package crane

import "errors"

var (
	ErrCraneNotFound      = errors.New("Crane not found")
	ErrCraneModelNotFound = errors.New("Crane model not found")
	ErrCraneNotAssignable = errors.New("Crane is not in an assignable status")
)
