package rider

import (
	"fmt"
	"strings"
)

type ApplyRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required"`
	Phone       string   `json:"phone"`
	Region      string   `json:"region"`
	NIDNumber   string   `json:"nid_number"`
	BikeBrand   string   `json:"bike_brand"`
	AreasToRide []string `json:"areas_to_ride"`
}

// Validate validates the ApplyRequest fields
func (r *ApplyRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("email is not valid")
	}
	return nil
}
