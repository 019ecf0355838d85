package document

import "errors"

var (
	ErrRequestNotFound  = errors.New("Document request not found")
	ErrItemNotFound     = errors.New("Document item not found")
	ErrItemNotSubmitted = errors.New("Document item is not in SUBMITTED status")
)
