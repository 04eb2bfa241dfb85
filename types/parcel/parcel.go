package parcel

import (
	"fmt"

	parcelModel "zap-shift/models/parcel"
)

// CreateParcelRequest carries the sender's payload. The engine stores it as
// submitted; only the authenticated caller is required.
type CreateParcelRequest struct {
	Type                string  `json:"type"`
	Title               string  `json:"title"`
	WeightKg            float64 `json:"weight_kg"`
	SenderName          string  `json:"sender_name"`
	SenderContact       string  `json:"sender_contact"`
	SenderRegion        string  `json:"sender_region"`
	SenderAddress       string  `json:"sender_address"`
	PickupInstruction   string  `json:"pickup_instruction"`
	ReceiverName        string  `json:"receiver_name"`
	ReceiverContact     string  `json:"receiver_contact"`
	ReceiverRegion      string  `json:"receiver_region"`
	ReceiverAddress     string  `json:"receiver_address"`
	DeliveryInstruction string  `json:"delivery_instruction"`
	Cost                float64 `json:"cost"`
}

type AssignRiderRequest struct {
	RiderID uint `json:"rider_id" validate:"required"`
}

// Validate validates the AssignRiderRequest fields
func (r *AssignRiderRequest) Validate() error {
	if r.RiderID == 0 {
		return fmt.Errorf("rider_id is required")
	}
	return nil
}

type DeliverRequest struct {
	Status string `json:"status"`
}

// Validate allows an empty status (defaults to delivered) or one of the
// terminal delivery outcomes.
func (r *DeliverRequest) Validate() error {
	if r.Status == "" {
		return nil
	}
	s := parcelModel.DeliveryStatus(r.Status)
	if !s.Terminal() {
		return fmt.Errorf("status must be one of 'delivered', 'service_center_delivered' or 'returned'")
	}
	return nil
}

// FinalStatus resolves the delivery outcome requested by the rider.
func (r *DeliverRequest) FinalStatus() parcelModel.DeliveryStatus {
	if r.Status == "" {
		return parcelModel.DeliveryStatusDelivered
	}
	return parcelModel.DeliveryStatus(r.Status)
}

// StatusCount is one row of the delivery status aggregate.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
