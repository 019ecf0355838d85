package site

import "errors"

var (
	ErrSiteNotFound     = errors.New("Site not found")
	ErrSiteNotPending   = errors.New("Site is not pending approval")
	ErrSiteNotActive    = errors.New("Site is not active")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)
