package paymentgw

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Intent is the slice of a payment intent the rest of the app cares about.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret,omitempty"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
}

// Client wraps the external payment processor. Constructed once at startup
// and handed to the payment controller.
type Client struct {
	currency string
}

func NewClient(secretKey, currency string) *Client {
	stripe.Key = secretKey
	if currency == "" {
		currency = "usd"
	}
	return &Client{currency: currency}
}

// CreateIntent creates a payment intent for the given amount in minor units.
func (c *Client) CreateIntent(amount int64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
	}, nil
}

// RetrieveIntent fetches the current state of a payment intent.
func (c *Client) RetrieveIntent(id string) (*Intent, error) {
	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	return &Intent{
		ID:     pi.ID,
		Status: string(pi.Status),
		Amount: pi.Amount,
	}, nil
}
