package rider

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusDeactivated Status = "deactivated"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusDeactivated
}

type WorkStatus string

const (
	WorkStatusAvailable WorkStatus = "available"
	WorkStatusBusy      WorkStatus = "busy"
)

// Rider is a courier entity that can be assigned to deliver parcels.
// At most one rider row exists per email.
type Rider struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"size:255;not null"        json:"name"`
	Email       string      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone       string      `gorm:"size:50"                  json:"phone"`
	Region      string      `gorm:"size:120"                 json:"region"`
	NIDNumber   string      `gorm:"size:50"                  json:"nid_number,omitempty"`
	BikeBrand   string      `gorm:"size:120"                 json:"bike_brand,omitempty"`
	AreasToRide StringSlice `gorm:"type:json"                json:"areas_to_ride"`
	Status      Status      `gorm:"size:20;not null;default:pending;index" json:"status"`
	WorkStatus  WorkStatus  `gorm:"size:20;not null;default:available"     json:"work_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// MatchesArea reports whether the rider covers the given area. Matching is a
// case-insensitive exact comparison against each entry of AreasToRide, never a
// substring or pattern match, so user input needs no escaping.
func (r *Rider) MatchesArea(area string) bool {
	area = strings.TrimSpace(area)
	for _, a := range r.AreasToRide {
		if strings.EqualFold(strings.TrimSpace(a), area) {
			return true
		}
	}
	return false
}

// StringSlice stores a set of strings as a JSON column in PostgreSQL.
type StringSlice []string

// Scan implements the Scanner interface for database deserialization
func (ss *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*ss = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver Valuer interface for database serialization
func (ss StringSlice) Value() (driver.Value, error) {
	if ss == nil {
		return nil, nil
	}
	return json.Marshal(ss)
}
