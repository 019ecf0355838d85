package org

import "time"

type OrgType string

const (
	OrgTypeOwner        OrgType = "OWNER"        // Construction company owning cranes
	OrgTypeManufacturer OrgType = "MANUFACTURER" // Crane manufacturer providing approval
)

type Org struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      OrgType   `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerStats aggregates an owner organization's crane fleet.
type OwnerStats struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TotalCranes     int64  `json:"total_cranes"`
	AvailableCranes int64  `json:"available_cranes"`
}
