package payment

import "time"

// PaymentRecord is written exactly once per successful payment confirmation.
// Append-only; the parcel row carries the live payment status.
type PaymentRecord struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ParcelID        uint    `gorm:"not null;index"           json:"parcel_id"`
	TrackingID      string  `gorm:"size:64;index"            json:"tracking_id"`
	PaymentIntentID string  `gorm:"size:255;not null"        json:"payment_intent_id"`
	Amount          float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Email           string  `gorm:"size:255;not null;index"  json:"email"`
	PaymentMethod   string  `gorm:"size:50"                  json:"payment_method"`
	Status          string  `gorm:"size:50;not null;default:succeeded" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"paid_at"`
}

func (PaymentRecord) TableName() string {
	return "payments"
}
