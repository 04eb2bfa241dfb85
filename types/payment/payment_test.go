package payment_test

import (
	"testing"

	"zap-shift/types/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPaymentRequestValidate(t *testing.T) {
	valid := payment.ConfirmPaymentRequest{
		PaymentIntentID: "pi_123",
		Amount:          120.50,
		UserEmail:       "a@x.com",
		PaymentMethod:   "card",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*payment.ConfirmPaymentRequest)
	}{
		{"missing intent id", func(r *payment.ConfirmPaymentRequest) { r.PaymentIntentID = "" }},
		{"blank intent id", func(r *payment.ConfirmPaymentRequest) { r.PaymentIntentID = "   " }},
		{"missing amount", func(r *payment.ConfirmPaymentRequest) { r.Amount = 0 }},
		{"negative amount", func(r *payment.ConfirmPaymentRequest) { r.Amount = -1 }},
		{"missing email", func(r *payment.ConfirmPaymentRequest) { r.UserEmail = "" }},
		{"missing method", func(r *payment.ConfirmPaymentRequest) { r.PaymentMethod = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateIntentRequestValidate(t *testing.T) {
	assert.NoError(t, (&payment.CreateIntentRequest{Amount: 1}).Validate())
	assert.Error(t, (&payment.CreateIntentRequest{}).Validate())
	assert.Error(t, (&payment.CreateIntentRequest{Amount: -500}).Validate())
}
