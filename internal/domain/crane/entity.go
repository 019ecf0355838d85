package crane

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type CraneStatus string

const (
	CraneStatusNormal  CraneStatus = "NORMAL"  // Available for assignment
	CraneStatusRepair  CraneStatus = "REPAIR"  // Under maintenance
	CraneStatusInbound CraneStatus = "INBOUND" // Being transported
)

// CraneModel is a manufacturer spec sheet shared by crane instances.
type CraneModel struct {
	ID                   string       `json:"id"`
	ModelName            string       `json:"model_name"`
	MaxLiftingCapacityTM *int         `json:"max_lifting_capacity_tm,omitempty"`
	MaxWorkingHeightM    *float64     `json:"max_working_height_m,omitempty"`
	MaxWorkingRadiusM    *float64     `json:"max_working_radius_m,omitempty"`
	BoomSections         *int         `json:"boom_sections,omitempty"`
	TeleSpeedMSec        *string      `json:"tele_speed_m_sec,omitempty"`
	BoomAngleSpeedDegSec *string      `json:"boom_angle_speed_deg_sec,omitempty"`
	LiftingLoadDistance  LiftingTable `json:"lifting_load_distance,omitempty"`
	OptionalSpecs        []string     `json:"optional_specs,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// LiftingTable maps working radius to maximum load, stored as JSONB.
type LiftingTable map[string]float64

// Value implements driver.Valuer for database storage
func (lt LiftingTable) Value() (driver.Value, error) {
	if len(lt) == 0 {
		return nil, nil
	}
	return json.Marshal(lt)
}

// Scan implements sql.Scanner for database retrieval
func (lt *LiftingTable) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LiftingTable: invalid type")
	}
	return json.Unmarshal(bytes, lt)
}

type Crane struct {
	ID         string      `json:"id"`
	OwnerOrgID string      `json:"owner_org_id"`
	ModelID    string      `json:"model_id"`
	SerialNo   *string     `json:"serial_no,omitempty"`
	Status     CraneStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Join fields for responses
	ModelName *string `json:"model_name,omitempty"`
}

// IsAssignable reports whether the crane may be claimed by a new assignment.
func (c *Crane) IsAssignable() bool {
	return c.Status == CraneStatusNormal
}
