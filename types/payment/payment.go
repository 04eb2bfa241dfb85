package payment

import (
	"fmt"
	"strings"
)

type CreateIntentRequest struct {
	// Amount is in the currency's minor units (e.g. cents).
	Amount int64 `json:"amount" validate:"required"`
}

// Validate validates the CreateIntentRequest fields
func (r *CreateIntentRequest) Validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string  `json:"paymentIntentId" validate:"required"`
	Amount          float64 `json:"amount" validate:"required"`
	UserEmail       string  `json:"userEmail" validate:"required"`
	PaymentMethod   string  `json:"paymentMethod" validate:"required"`
}

// Validate validates the ConfirmPaymentRequest fields
func (r *ConfirmPaymentRequest) Validate() error {
	if strings.TrimSpace(r.PaymentIntentID) == "" {
		return fmt.Errorf("paymentIntentId is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount is required")
	}
	if strings.TrimSpace(r.UserEmail) == "" {
		return fmt.Errorf("userEmail is required")
	}
	if strings.TrimSpace(r.PaymentMethod) == "" {
		return fmt.Errorf("paymentMethod is required")
	}
	return nil
}
