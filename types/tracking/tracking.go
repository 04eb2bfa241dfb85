package tracking

import (
	"fmt"
	"strings"
)

type AppendEventRequest struct {
	TrackingID string `json:"tracking_id" validate:"required"`
	Status     string `json:"status" validate:"required"`
	Message    string `json:"message"`
}

// Validate validates the AppendEventRequest fields
func (r *AppendEventRequest) Validate() error {
	if strings.TrimSpace(r.TrackingID) == "" {
		return fmt.Errorf("tracking_id is required")
	}
	if strings.TrimSpace(r.Status) == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
