package parcel

import (
	"time"
)

// Parcel represents a shipment record tracked through payment and delivery states.
type Parcel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingID string `gorm:"size:64;not null;uniqueIndex" json:"tracking_id"`
	CreatedBy  string `gorm:"size:255;not null;index"      json:"created_by"`

	// Descriptive payload, stored as submitted by the sender.
	Type                string  `gorm:"size:50"           json:"type"`
	Title               string  `gorm:"size:255"          json:"title"`
	WeightKg            float64 `gorm:"type:decimal(8,2)" json:"weight_kg"`
	SenderName          string  `gorm:"size:255"          json:"sender_name"`
	SenderContact       string  `gorm:"size:50"           json:"sender_contact"`
	SenderRegion        string  `gorm:"size:120"          json:"sender_region"`
	SenderAddress       string  `gorm:"type:text"         json:"sender_address"`
	PickupInstruction   string  `gorm:"type:text"         json:"pickup_instruction"`
	ReceiverName        string  `gorm:"size:255"          json:"receiver_name"`
	ReceiverContact     string  `gorm:"size:50"           json:"receiver_contact"`
	ReceiverRegion      string  `gorm:"size:120"          json:"receiver_region"`
	ReceiverAddress     string  `gorm:"type:text"         json:"receiver_address"`
	DeliveryInstruction string  `gorm:"type:text"         json:"delivery_instruction"`
	Cost                float64 `gorm:"type:decimal(10,2)" json:"cost"`

	PaymentStatus  PaymentStatus  `gorm:"size:20;not null;default:unpaid"        json:"payment_status"`
	DeliveryStatus DeliveryStatus `gorm:"size:40;not null;default:pending;index" json:"delivery_status"`
	CashoutStatus  CashoutStatus  `gorm:"size:20;not null;default:none"          json:"cashout_status"`

	// Rider snapshot captured at assignment time.
	AssignedRiderID    *uint      `gorm:"index"    json:"assigned_rider_id,omitempty"`
	AssignedRiderName  string     `gorm:"size:255" json:"assigned_rider_name,omitempty"`
	AssignedRiderPhone string     `gorm:"size:50"  json:"assigned_rider_phone,omitempty"`
	AssignedRiderEmail string     `gorm:"size:255;index" json:"assigned_rider_email,omitempty"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`

	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	PickedBy    string     `gorm:"size:255" json:"picked_by,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	DeliveredBy string     `gorm:"size:255" json:"delivered_by,omitempty"`
	CashedOutAt *time.Time `json:"cash_out_at,omitempty"`

	PaymentIntentID string     `gorm:"size:255" json:"payment_intent_id,omitempty"`
	PaymentMethod   string     `gorm:"size:50"  json:"payment_method,omitempty"`
	PaidAmount      float64    `gorm:"type:decimal(10,2)" json:"paid_amount,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"creation_date"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
