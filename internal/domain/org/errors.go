package org

import "errors"

var (
	ErrOrgNotFound     = errors.New("Organization not found")
	ErrOrgNotOwnerType = errors.New("Organization is not an owner type")
)
