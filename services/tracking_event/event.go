package tracking_event

import (
	"fmt"
	"strings"

	trackingModel "zap-shift/models/tracking"

	"gorm.io/gorm"
)

// Append writes one event to the tracking ledger with a server-assigned
// timestamp. Events are never updated or deleted afterwards.
func Append(tx *gorm.DB, trackingID, status, message, updatedBy string) (*trackingModel.TrackingEvent, error) {
	if strings.TrimSpace(trackingID) == "" {
		return nil, fmt.Errorf("tracking_id is required")
	}
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("status is required")
	}

	ev := trackingModel.TrackingEvent{
		TrackingID: trackingID,
		Status:     status,
		Message:    message,
		UpdatedBy:  updatedBy,
	}
	if err := tx.Create(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}
