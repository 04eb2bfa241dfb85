package tracking

import "time"

// Event status labels written by the lifecycle engines.
const (
	StatusParcelCreated = "parcel_created"
	StatusPaymentDone   = "payment_done"
	StatusRiderAssigned = "rider_assigned"
	StatusInTransit     = "in_transit"
	StatusDelivered     = "delivered"
)

// TrackingEvent is an append-only status update tied to a parcel's tracking id.
// Rows are never updated or deleted once written.
type TrackingEvent struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string `gorm:"size:64;not null;index"   json:"tracking_id"`
	Status     string `gorm:"size:64;not null"         json:"status"`
	Message    string `gorm:"type:text"                json:"message,omitempty"`
	UpdatedBy  string `gorm:"size:255"                 json:"updated_by,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (TrackingEvent) TableName() string {
	return "trackings"
}
